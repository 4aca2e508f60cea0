package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var phrasesMax int

var phrasesCmd = &cobra.Command{
	Use:   "phrases [text...]",
	Short: "Extract the most frequent key phrases from a description",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		text, err := readDescription(args)
		if err != nil {
			return err
		}

		maxPhrases := phrasesMax
		if maxPhrases <= 0 {
			maxPhrases = appInstance.Config.AutoTag.MaxPhrases
		}

		phrases := appInstance.AnalysisService.Phrases(cmd.Context(), text, maxPhrases)
		if len(phrases) == 0 {
			fmt.Println("no phrases found")
			return nil
		}
		for _, p := range phrases {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(phrasesCmd)
	phrasesCmd.Flags().IntVar(&phrasesMax, "max", 0, "Maximum number of phrases (0 uses the configured default)")
}
