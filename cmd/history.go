package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent analysis invocations",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if appInstance.HistoryStore == nil {
			return fmt.Errorf("analysis history is disabled")
		}

		recs, err := appInstance.HistoryStore.List(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("no analysis history yet")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Operation", "Input Chars", "Results", "At"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, rec := range recs {
			table.Append([]string{
				strconv.FormatInt(rec.ID, 10),
				rec.Operation,
				strconv.Itoa(rec.InputChars),
				strconv.Itoa(rec.ResultCount),
				rec.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of records to show")
}
