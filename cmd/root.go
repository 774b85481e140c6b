package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// configName is the config file looked up in the working directory when
// --config is not given.
const configName = "schedsim"

// rootOptions are the flags shared by every command.
type rootOptions struct {
	logLevel   string // Log verbosity level
	configFile string // Explicit config file; empty = ./schedsim.yaml if present
}

// newRootCmd builds the command tree. Every call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "schedsim",
		Short:         "CPU scheduling simulator (FIFO, SJF, round-robin, EDF, fair-share)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, opts.configFile); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q", opts.logLevel)
			}
			logrus.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default ./schedsim.yaml if present)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newAddCmd(),
		newListCmd(),
		newGenerateCmd(),
		newServeCmd(),
	)
	return root
}

// Execute runs the CLI root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// applyConfig layers the config file and SCHEDSIM_* environment variables under
// the command-line flags: a flag given on the command line always wins, then the
// environment, then the config file, then the flag default. Keys are flag names;
// in the environment dashes become underscores (SCHEDSIM_DISK_COST).
func applyConfig(cmd *cobra.Command, configFile string) error {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("SCHEDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		logrus.Debugf("using config file %s", v.ConfigFileUsed())
	}

	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("config key %q: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}
