// Root command for the washlog CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/washlog/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVehicle   string
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:     "washlog",
	Short:   "Washlog is a personal vehicle wash log",
	Version: version,
	Long: `Washlog keeps a local log of car washes per vehicle: when each wash
happened, what kind it was, which treatments were applied, and optional
before/after photos. All state lives on this machine.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.washlog-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagVehicle, "vehicle", "", "vehicle id or name to operate on (default: selected vehicle)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(vehicleCmd)
	rootCmd.AddCommand(washCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(treatmentsCmd)
}

// resolveDataDir returns the data directory path following the
// precedence chain: --data-dir flag > config.yaml data_dir >
// WASHLOG_DATA_DIR env > default $(CWD)/.washlog-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > WASHLOG_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
