package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vlogtagger/internal/app"
	"vlogtagger/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "vlogtagger",
	Short: "Content analysis for vlog descriptions",
	Long: `vlogtagger derives tags, category suggestions, sentiment and key
phrases from vlog descriptions, and runs the auto-tagging API and
background worker for the vlogging platform.`,
	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print help.
		cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// contextKey avoids collisions with other context values.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by
// PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check database connectivity and other diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if appInstance.VlogStore == nil {
			fmt.Println("Vlog database: not configured (analysis commands still work).")
		} else {
			fmt.Println("Checking vlog database connectivity...")
			if err := appInstance.VlogStore.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("database ping failed: %w", err)
			}
			fmt.Println("Vlog database connection successful.")
		}

		if appInstance.HistoryStore == nil {
			fmt.Println("Analysis history: disabled.")
		} else {
			fmt.Println("Analysis history: available.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
