package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ksalhi/refview/internal/config"
	"github.com/ksalhi/refview/internal/refdoc"
	"github.com/ksalhi/refview/internal/viewer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Fetch the reference document and start the viewer",
	Long: `Fetches the configured document once and serves the reference site.
If the fetch fails the server still starts and renders the failure;
there is no retry while the process lives.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger := newLogger()

		loader := refdoc.NewLoader(time.Duration(cfg.FetchTimeoutSeconds)*time.Second, logger)
		doc, loadErr := loader.Load(cmd.Context(), cfg.Source)
		if loadErr != nil {
			// Serve the failure instead of exiting; the viewer renders it.
			logger.Error("document load failed", "source", cfg.Source, "err", loadErr)
		}

		srv := viewer.New(viewer.Config{
			Port:        cfg.Port,
			Title:       cfg.Title,
			DefaultMode: refdoc.ParseViewMode(cfg.Mode),
			AllowAll:    cfg.AllowAllOrigins,
		}, doc, loadErr, logger)

		if cfg.Open {
			go viewer.OpenBrowser(fmt.Sprintf("http://localhost:%d", cfg.Port))
		}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			logger.Info("shutting down", "signal", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
