package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vlogtagger/internal/clix"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored vlogs",
	Long: `Displays the vlogs stored in the primary database, newest first,
with their tags and a short excerpt of each description.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if appInstance.VlogService == nil {
			return fmt.Errorf("list requires a configured database DSN")
		}

		pagination := clix.ParsePagination(cmd.Flags())

		summaries, err := appInstance.VlogService.ListVlogs(cmd.Context(), pagination.Limit, pagination.Offset)
		if err != nil {
			return fmt.Errorf("list vlogs: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("no vlogs stored")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Title", "Category", "Tags", "Auto", "Excerpt"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, s := range summaries {
			auto := ""
			if s.Vlog.AutoTagged {
				auto = "yes"
			}
			table.Append([]string{
				s.Vlog.ID.String(),
				s.Vlog.Title,
				s.Vlog.Category,
				strings.Join(s.Vlog.Tags, ", "),
				auto,
				s.Excerpt,
			})
		}
		table.Render()

		fmt.Printf("displayed %d vlog(s)\n", len(summaries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntP("limit", "l", 20, "Number of vlogs to display per page")
	listCmd.Flags().IntP("offset", "o", 0, "Number of vlogs to skip (for pagination)")
}
