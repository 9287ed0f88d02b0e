package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/manifoldco/promptui"
)

// RunWizard asks for the data source and output settings, discovers the
// resource files when the source is a local directory, and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to mcpmatrix! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	sourcePrompt := promptui.Prompt{
		Label:   "Data source (directory or http(s) URL)",
		Default: cfg.DataSource,
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, errors.Wrap(err, "data source")
	}
	cfg.DataSource = strings.TrimSpace(source)

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, errors.Wrap(err, "output dir")
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, errors.Wrap(err, "title")
	}
	cfg.Title = strings.TrimSpace(title)

	if !cfg.IsRemote() {
		if info, statErr := os.Stat(cfg.DataSource); statErr == nil && info.IsDir() {
			discoverPrompt := promptui.Select{
				Label: "Resource list",
				Items: []string{
					"discover from the data directory",
					"use the built-in defaults",
				},
			}
			idx, _, err := discoverPrompt.Run()
			if err != nil {
				return nil, errors.Wrap(err, "resource list")
			}
			if idx == 0 {
				res, err := DiscoverResources(os.DirFS(cfg.DataSource))
				if err != nil {
					return nil, err
				}
				cfg.Resources = res
				fmt.Printf("Found %d interfaces, %d clients, %d features, %d transports\n",
					len(res.IDEs), len(res.AIClients), len(res.Features), len(res.Transports))
			}
		} else {
			fmt.Printf("\nNote: %s does not exist yet; using the default resource list.\n", cfg.DataSource)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	fmt.Println("Run `mcpmatrix build` to generate the site.")
	return cfg, nil
}
