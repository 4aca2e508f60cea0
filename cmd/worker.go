package cmd

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vlogtagger/internal/app"
	"vlogtagger/internal/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the background re-analysis worker",
	Long:  `Starts the Asynq worker process that handles vlog re-tagging tasks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get application context: %w", err)
		}

		if err := runWorker(appInstance); err != nil {
			log.WithError(err).Error("worker exited with error")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

// runWorker initializes and runs the Asynq worker server.
func runWorker(appInstance *app.App) error {
	if appInstance.VlogService == nil {
		return fmt.Errorf("worker requires a configured database DSN")
	}
	cfg := appInstance.Config

	srv := asynq.NewServer(
		appInstance.RedisOpt(),
		asynq.Config{
			Concurrency: cfg.Worker.Concurrency,
			Queues:      cfg.Worker.Queues,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.WithFields(log.Fields{
					"type":    task.Type(),
					"payload": string(task.Payload()),
				}).WithError(err).Error("task failed")
			}),
		},
	)

	mux := asynq.NewServeMux()
	worker.RegisterHandlers(mux, worker.NewRetagHandler(appInstance.VlogService))

	log.Info("starting re-analysis worker")
	return srv.Run(mux)
}
