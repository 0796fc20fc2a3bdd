// Package sources implements the sources command for inspecting the
// configured publisher profiles.
package sources

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ysleecn1234/newspaper-project/cmd/common"
	internalsources "github.com/ysleecn1234/newspaper-project/internal/sources"
)

// Command returns the sources command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage publisher sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(listCommand())
	return cmd
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured publisher sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.Bootstrap()
			if err != nil {
				return err
			}
			renderProfiles(deps.Registry.All())
			return nil
		},
	}
}

func renderProfiles(profiles []*internalsources.Profile) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Name", "Hosts", "Categories", "Feeds", "Patterns"})

	for _, p := range profiles {
		t.AppendRow(table.Row{
			p.Key,
			p.Name,
			strings.Join(p.Hosts, "\n"),
			fmt.Sprintf("%d", len(p.Categories)),
			fmt.Sprintf("%d", len(p.Feeds)),
			fmt.Sprintf("%d", len(p.ArticlePatterns)),
		})
	}
	t.Render()
}
