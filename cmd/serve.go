package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	apperrors "github.com/ziadkadry99/mcp-matrix/internal/errors"
	"github.com/ziadkadry99/mcp-matrix/internal/server"
	"github.com/ziadkadry99/mcp-matrix/internal/site"
)

var (
	servePort  int
	serveWatch bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the site locally",
	Long: `Builds the site and serves it on localhost. The preview also answers
/api/detail/{feature}/{combo} and /api/combinations from the loaded
catalog.

With --watch, edits to the JSON files under a local data directory
rebuild the site and reload every open page.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (default from config)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "rebuild when data files change")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in the default browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Serve.Port = servePort
	}
	if cmd.Flags().Changed("watch") {
		cfg.Serve.Watch = serveWatch
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	preview := site.NewPreview(site.Generator{
		OutputDir: cfg.OutputDir,
		Title:     cfg.Title,
		BaseURL:   cfg.BaseURL,
		Logger:    logger,
	}, stateLoader(cfg), logger)

	if _, err := preview.Rebuild(ctx); err != nil {
		return apperrors.NewSystemError(err, "Check that "+cfg.OutputDir+" is writable")
	}

	srv := server.New(server.Config{Port: cfg.Serve.Port}, logger)
	preview.Mount(srv.Router())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Serve.Port)
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at %s\n", cfg.OutputDir, url)

	if cfg.Serve.Watch {
		if cfg.IsRemote() {
			logger.Warn("--watch ignored for remote data sources", "source", cfg.DataSource)
		} else {
			go func() {
				if err := preview.Watch(ctx, site.WatchDirs(cfg.DataSource)); err != nil {
					logger.Error("watcher stopped", "error", err)
				}
			}()
		}
	}

	if serveOpen {
		site.OpenBrowser(url)
	}

	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok && err != nil {
			return apperrors.NewSystemError(errors.Wrap(err, "preview server"), fmt.Sprintf("Is port %d already in use? Try --port", cfg.Serve.Port))
		}
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
