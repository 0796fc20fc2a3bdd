// Package crawl implements the crawl command: the full discovery,
// extraction, and persistence pipeline for the configured publishers.
package crawl

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ysleecn1234/newspaper-project/cmd/common"
	"github.com/ysleecn1234/newspaper-project/internal/database"
	"github.com/ysleecn1234/newspaper-project/internal/extractor"
	"github.com/ysleecn1234/newspaper-project/internal/feed"
	"github.com/ysleecn1234/newspaper-project/internal/fetcher"
	"github.com/ysleecn1234/newspaper-project/internal/frontier"
	"github.com/ysleecn1234/newspaper-project/internal/output"
	"github.com/ysleecn1234/newspaper-project/internal/pipeline"
)

const summaryRounding = 100 * time.Millisecond

// Command returns the crawl command.
func Command() *cobra.Command {
	var (
		sourceKeys   []string
		categoryURLs []string
		pages        int
		outPath      string
		noSaveDB     bool
	)

	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl the configured publishers and store extracted articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.Bootstrap()
			if err != nil {
				return err
			}
			cfg := deps.Config
			log := deps.Logger

			if pages > 0 {
				cfg.Crawler.MaxPages = pages
			}
			if outPath != "" {
				cfg.Output.Path = outPath
			}
			if noSaveDB {
				cfg.Output.SaveDB = false
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var stores pipeline.Stores
			if cfg.Output.SaveDB {
				db, err := database.Connect(cfg.Database, log)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := database.Migrate(ctx, db); err != nil {
					return err
				}
				stores = pipeline.Stores{
					Articles:    database.NewArticleRepository(db, log),
					Journalists: database.NewJournalistRepository(db, log),
					CrawlLogs:   database.NewCrawlLogRepository(db, log),
				}
			} else {
				log.Info("database persistence disabled")
			}

			emitter, err := output.NewWriter(cfg.Output.Path)
			if err != nil {
				return err
			}
			defer emitter.Close()

			client := fetcher.New(fetcher.Config{
				RequestTimeout: cfg.Crawler.RequestTimeout,
				MaxRetries:     cfg.Crawler.MaxRetries,
				UserAgent:      cfg.Crawler.UserAgent,
				AcceptLanguage: cfg.Crawler.AcceptLanguage,
			}, log)

			walker := frontier.New(client, deps.Registry, frontier.Config{
				MaxPages: cfg.Crawler.MaxPages,
				Delay:    cfg.Crawler.RequestDelay,
			}, log)

			p := pipeline.New(
				pipeline.Config{
					Workers:      cfg.Crawler.Workers,
					Delay:        cfg.Crawler.RequestDelay,
					SourceKeys:   sourceKeys,
					CategoryURLs: categoryURLs,
				},
				deps.Registry,
				walker,
				client,
				extractor.New(deps.Registry, log),
				feed.NewReader(log),
				stores,
				emitter,
				log,
			)

			summary, err := p.Run(ctx)
			if err != nil {
				return fmt.Errorf("crawl run failed: %w", err)
			}
			fmt.Printf("crawl %s: %d saved, %d duplicates, %d errors in %s\n",
				summary.RunID, summary.Saved, summary.Duplicates, summary.Errors,
				summary.Duration.Round(summaryRounding))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sourceKeys, "source", nil,
		"restrict the run to the named publishers (repeatable)")
	cmd.Flags().StringSliceVar(&categoryURLs, "category-url", nil,
		"restrict the run to the given category listing URLs (repeatable)")
	cmd.Flags().IntVar(&pages, "pages", 0,
		"listing-page budget per category (overrides config)")
	cmd.Flags().StringVar(&outPath, "out", "",
		"NDJSON output file (default stdout)")
	cmd.Flags().BoolVar(&noSaveDB, "no-save-db", false,
		"skip database persistence, emit NDJSON only")

	return cmd
}
