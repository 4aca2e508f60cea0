package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vlogtagger/internal/clix"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [text...]",
	Short: "Suggest taxonomy categories for a description",
	Long: `Scores the fixed category taxonomy against the given text (and
optional --tags) and prints up to three category names, most relevant
first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		text, err := readDescription(args)
		if err != nil {
			return err
		}
		filterTags := clix.ParseTags(cmd.Flags())

		cats := appInstance.AnalysisService.Categories(cmd.Context(), text, filterTags)
		if len(cats) == 0 {
			fmt.Println("no category matched")
			return nil
		}
		for i, name := range cats {
			fmt.Printf("%d. %s\n", i+1, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().String("tags", "", "Comma-separated tags to include in the scoring")
}
