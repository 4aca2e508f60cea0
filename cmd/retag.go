package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"vlogtagger/internal/tasks"
)

var retagID string

var retagCmd = &cobra.Command{
	Use:   "retag",
	Short: "Enqueue background re-tagging of stored vlogs",
	Long: `Enqueues one vlog:retag task per stored vlog (or a single vlog with
--id). The worker process picks the tasks up and refreshes each vlog's
generated tags from its current description.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if appInstance.VlogService == nil {
			return fmt.Errorf("retag requires a configured database DSN")
		}

		var ids []uuid.UUID
		if retagID != "" {
			id, err := uuid.Parse(retagID)
			if err != nil {
				return fmt.Errorf("invalid --id: %w", err)
			}
			ids = []uuid.UUID{id}
		} else {
			ids, err = appInstance.VlogService.ListVlogIDs(cmd.Context())
			if err != nil {
				return fmt.Errorf("list vlogs for retag: %w", err)
			}
		}
		if len(ids) == 0 {
			fmt.Println("no vlogs to retag")
			return nil
		}

		var enqueued int
		for _, id := range ids {
			task, err := tasks.NewRetagTask(id)
			if err != nil {
				return fmt.Errorf("build retag task for %s: %w", id, err)
			}
			if _, err := appInstance.JobClient.Enqueue(task); err != nil {
				return fmt.Errorf("enqueue retag task for %s: %w", id, err)
			}
			enqueued++
		}

		fmt.Printf("enqueued %d retag task(s)\n", enqueued)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(retagCmd)
	retagCmd.Flags().StringVar(&retagID, "id", "", "Retag a single vlog by ID instead of all vlogs")
}
