package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	tagsCategory string
	tagsMax      int
)

var tagsCmd = &cobra.Command{
	Use:   "tags [text...]",
	Short: "Generate descriptive tags for a description",
	Long: `Runs the tag generator against the given text (arguments or stdin)
and prints the resulting tags, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		text, err := readDescription(args)
		if err != nil {
			return err
		}

		maxTags := tagsMax
		if maxTags <= 0 {
			maxTags = appInstance.Config.AutoTag.MaxTags
		}

		tags := appInstance.AnalysisService.Tags(cmd.Context(), text, tagsCategory, maxTags)
		if len(tags) == 0 {
			fmt.Println(color.YellowString("no tags generated"))
			return nil
		}
		for _, tag := range tags {
			fmt.Println(color.GreenString(tag))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().StringVar(&tagsCategory, "category", "", "Taxonomy category guiding keyword selection (defaults to 'other')")
	tagsCmd.Flags().IntVar(&tagsMax, "max", 0, "Maximum number of tags (0 uses the configured default)")
}
