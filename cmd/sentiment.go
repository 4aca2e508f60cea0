package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vlogtagger/pkg/analyzer"
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [text...]",
	Short: "Classify a description as positive, negative or neutral",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		text, err := readDescription(args)
		if err != nil {
			return err
		}

		label := appInstance.AnalysisService.Sentiment(cmd.Context(), text)
		switch label {
		case analyzer.SentimentPositive:
			fmt.Println(color.GreenString(label))
		case analyzer.SentimentNegative:
			fmt.Println(color.RedString(label))
		default:
			fmt.Println(label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sentimentCmd)
}
