package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/quentinrf/berlin-clock/internal/adapters/terminal"
	"github.com/quentinrf/berlin-clock/internal/logging"
)

// EnvPrefix prefixes environment variables bound to flags, e.g. BERLINCLOCK_LOG_LEVEL.
const EnvPrefix = "BERLINCLOCK"

// NewRootCommand builds the berlinclock command tree.
// v holds configuration merged from flags, environment and the optional config file.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "berlinclock",
		Short: "Show times of day on a Berlin Clock",
		Long: `berlinclock renders a 24-hour HH:mm:ss time as the five lamp rows of the Berlin Clock:
the seconds blinker, five-hour and one-hour rows of red lamps, the five-minute row
with red quarter-hour marks, and the one-minute row.

Lamps are printed as R (red), Y (yellow) and O (off), one row per line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(cmd, v)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default $HOME/.config/berlinclock.yaml)")
	root.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("pretty", string(terminal.ModeAuto), "coloured clock face: auto, always or never")

	root.AddCommand(
		newConvertCommand(),
		newNowCommand(),
		newRemoteCommand(),
	)
	return root
}

// initializeConfig reads the config file, binds flags to BERLINCLOCK_* variables
// and configures logging.
func initializeConfig(cmd *cobra.Command, v *viper.Viper) error {
	configFile, _ := cmd.Flags().GetString("config")
	explicit := configFile != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			configFile = filepath.Join(home, ".config", "berlinclock.yaml")
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case explicit:
				return fmt.Errorf("failed to read config %s: %w", configFile, err)
			case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
				// the default config file is optional
			default:
				return fmt.Errorf("failed to read config %s: %w", configFile, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return err
	}

	level, _ := cmd.Flags().GetString("log-level")
	logging.SetupWriter(cmd.ErrOrStderr(), level, true)
	log.Debug().Str("config", v.ConfigFileUsed()).Msg("configuration loaded")
	return nil
}

// bindFlags applies config and environment values to flags the user did not set.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
			bindErr = fmt.Errorf("invalid value for %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// printerFor creates the printer selected by the --pretty flag
func printerFor(cmd *cobra.Command) (*terminal.Printer, error) {
	raw, _ := cmd.Flags().GetString("pretty")
	mode, err := terminal.ParseMode(raw)
	if err != nil {
		return nil, err
	}
	return terminal.ForWriter(cmd.OutOrStdout(), mode), nil
}
