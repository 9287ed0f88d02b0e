package cmd

import (
	"context"
	"path"

	"github.com/cockroachdb/errors"

	"github.com/ziadkadry99/mcp-matrix/internal/catalog"
	"github.com/ziadkadry99/mcp-matrix/internal/config"
	apperrors "github.com/ziadkadry99/mcp-matrix/internal/errors"
	"github.com/ziadkadry99/mcp-matrix/internal/loader"
	"github.com/ziadkadry99/mcp-matrix/internal/progress"
)

// loadConfig validates the config loaded by the root command.
func loadConfig() (*config.Config, error) {
	if appConfig == nil {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, apperrors.NewConfigError(err)
		}
		appConfig = cfg
	}
	if err := appConfig.Validate(); err != nil {
		return nil, apperrors.NewConfigError(err)
	}
	return appConfig, nil
}

// loadState loads every resource of the configured manifest. Failed
// resources are logged by the loader and left out of the state; the report
// says which.
func loadState(ctx context.Context, cfg *config.Config, reporter progress.Reporter) (*catalog.State, *loader.Report) {
	manifest := loader.ManifestFromConfig(cfg.Resources)
	l := loader.New(loader.NewFetcher(cfg.DataSource), manifest, logger)

	reporter.Start(len(manifest.Resources()))
	l.OnProgress = func(done, total int, p string) {
		reporter.Update(done, path.Base(p))
	}
	state, report := l.Load(ctx)
	reporter.Finish()

	return state, report
}

// requireData turns a load that produced nothing into a user error.
func requireData(cfg *config.Config, report *loader.Report) error {
	if report.Loaded > 0 {
		return nil
	}
	return apperrors.NewUserError(
		errors.Wrapf(apperrors.ErrNoData, "%d of %d documents failed from %s", len(report.Failures), report.Total, cfg.DataSource),
		"Check data_source in "+cfgFile+" or pass --data",
	)
}

// stateLoader adapts loadState to the preview's reload hook. Reloads are
// silent apart from the loader's own log lines.
func stateLoader(cfg *config.Config) func(context.Context) (*catalog.State, error) {
	return func(ctx context.Context) (*catalog.State, error) {
		state, _ := loadState(ctx, cfg, progress.Discard{})
		return state, nil
	}
}
