// Package stats implements the stats command: journalist rankings and
// per-source article counts rendered as tables.
package stats

import (
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ysleecn1234/newspaper-project/cmd/common"
	"github.com/ysleecn1234/newspaper-project/internal/database"
	"github.com/ysleecn1234/newspaper-project/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	recentLimit = 10
)

// Command returns the stats command.
func Command() *cobra.Command {
	var (
		source   string
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show journalist rankings and stored article counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.Bootstrap()
			if err != nil {
				return err
			}
			log := deps.Logger

			db, err := database.Connect(deps.Config.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			journalists := database.NewJournalistRepository(db, log)
			stats, err := journalists.TopByArticles(ctx, source, category, limit)
			if err != nil {
				return err
			}
			renderJournalists(stats)

			articles := database.NewArticleRepository(db, log)
			counts, err := articles.CountBySource(ctx)
			if err != nil {
				return err
			}
			renderCounts(counts)

			recent, err := articles.ListRecent(ctx, recentLimit)
			if err != nil {
				return err
			}
			renderRecent(recent)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "filter by publisher name")
	cmd.Flags().StringVar(&category, "category", "", "rank only journalists who covered this category")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum journalists listed")

	return cmd
}

func renderJournalists(stats []domain.JournalistStat) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Journalists by article count")
	t.AppendHeader(table.Row{"#", "Name", "Source", "Articles", "Categories", "First", "Last"})

	for i, s := range stats {
		first, last := "", ""
		if s.FirstArticleDate != nil {
			first = s.FirstArticleDate.Format(dateLayout)
		}
		if s.LastArticleDate != nil {
			last = s.LastArticleDate.Format(dateLayout)
		}
		t.AppendRow(table.Row{
			i + 1,
			s.Name,
			s.Source,
			s.TotalArticles,
			strings.Join(s.Categories, ", "),
			first,
			last,
		})
	}
	t.Render()
}

func renderCounts(counts map[string]int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Articles by source")
	t.AppendHeader(table.Row{"Source", "Articles"})

	names := make([]string, 0, len(counts))
	for source := range counts {
		names = append(names, source)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	total := 0
	for _, source := range names {
		t.AppendRow(table.Row{source, counts[source]})
		total += counts[source]
	}
	t.AppendFooter(table.Row{"Total", total})
	t.Render()
}

func renderRecent(articles []domain.ArticleRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Recently stored articles")
	t.AppendHeader(table.Row{"Title", "Source", "Author", "Published", "Words"})

	for _, a := range articles {
		published := ""
		if a.PublishedDate != nil {
			published = a.PublishedDate.Format(dateLayout)
		}
		t.AppendRow(table.Row{a.Title, a.Source, a.Author, published, a.WordCount})
	}
	t.Render()
}
