package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vlogtagger/internal/apihandlers"
)

var (
	serveAddr string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis and vlog API server",
	Long: `Starts an HTTP server exposing the analysis endpoints and, when a
database is configured, the vlog create/update/read routes with
auto-tagging.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		router := gin.Default()
		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			vlogGroup := v1.Group("/vlogs")
			{
				vlogGroup.POST("", apiHandler.CreateVlogHandler)
				vlogGroup.GET("", apiHandler.ListVlogsHandler)
				vlogGroup.GET("/:id", apiHandler.GetVlogHandler)
				vlogGroup.PUT("/:id", apiHandler.UpdateVlogHandler)
			}

			analyzeGroup := v1.Group("/analyze")
			{
				analyzeGroup.POST("/tags", apiHandler.AnalyzeTagsHandler)
				analyzeGroup.POST("/categories", apiHandler.AnalyzeCategoriesHandler)
				analyzeGroup.POST("/sentiment", apiHandler.AnalyzeSentimentHandler)
				analyzeGroup.POST("/phrases", apiHandler.AnalyzePhrasesHandler)
			}
		}

		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Flags win over config; config fills whatever was not given.
		if !cmd.Flags().Changed("addr") {
			serveAddr = appInstance.Config.Server.Addr
		}
		if !cmd.Flags().Changed("port") {
			servePort = appInstance.Config.Server.Port
		}

		listenAddr := fmt.Sprintf("%s:%s", serveAddr, servePort)
		log.WithField("addr", listenAddr).Info("starting vlogtagger API server")

		if err := router.Run(listenAddr); err != nil {
			log.WithError(err).Error("API server failed")
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost", "Address to listen on (e.g. '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
}
