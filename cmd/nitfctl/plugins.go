package main

import (
	"fmt"

	"github.com/nitfgo/nitfgo/registry"
	"github.com/spf13/cobra"
)

var pluginsLoadDir string

func init() {
	cmd := newPluginsCmd()
	cmd.Flags().StringVar(&pluginsLoadDir, "load-dir", "", "Scan this directory for plugin shared libraries before listing")
	rootCmd.AddCommand(cmd)
}

func newPluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "Show the plugin registry's resolved search path and registered TRE handlers",
		Long: `The plugins command reports where NITF_PLUGIN_PATH (or the compile-time
default) resolves to, and lists every TRE identifier currently registered in
the process-wide registry singleton.

Example:
  nitfctl plugins
  nitfctl plugins --load-dir ./my-plugins`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlugins()
		},
	}
}

func runPlugins() error {
	cfg := registry.DefaultConfig()
	reg := registry.GetInstance()

	if pluginsLoadDir != "" {
		if err := reg.LoadDir(pluginsLoadDir); err != nil {
			return fmt.Errorf("failed to load plugin dir %s: %w", pluginsLoadDir, err)
		}
	}

	ids := reg.TREIdentifiers()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"pluginPath":  cfg.PluginPath,
			"treHandlers": ids,
		})
	}

	printInfo("Plugin path: %s\n", displayOrNone(cfg.PluginPath))
	printInfo("Registered TRE handlers (%d):\n", len(ids))
	for _, id := range ids {
		printInfo("  %s\n", id)
	}
	return nil
}

func displayOrNone(s string) string {
	if s == "" {
		return "(none configured)"
	}
	return s
}
