package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rshepherd549/enigma/internal/config"
	"github.com/rshepherd549/enigma/internal/logging"
	"github.com/rshepherd549/enigma/machine"
)

// configEnv names the variable consulted when --config is not given.
const configEnv = "ENIGMA_CONFIG"

// machineFlags holds the persistent flags shared by every sub-command.
type machineFlags struct {
	ConfigPath string
	LogLevel   string
}

// AddFlags registers --config and --log-level. The config default comes
// from ENIGMA_CONFIG if set.
func (f *machineFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&f.ConfigPath, "config", "c", os.Getenv(configEnv), "YAML or JSON machine configuration (env "+configEnv+")")
	flagSet.StringVar(&f.LogLevel, "log-level", "warn", "log level: debug, info, warn or error")
}

// logger builds the logger selected by --log-level on the error stream.
func (f *machineFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logging.ParseLevel(f.LogLevel)
	if err != nil {
		return nil, err
	}

	return logging.NewTo(cmd.ErrOrStderr(), level), nil
}

// load reads --config, falling back to the default configuration.
func (f *machineFlags) load() (*config.File, error) {
	if f.ConfigPath == "" {
		return config.Default(), nil
	}

	return config.Load(f.ConfigPath)
}

// build loads the configuration and assembles a machine logging through
// the command's error stream.
func (f *machineFlags) build(cmd *cobra.Command) (*machine.Machine, *slog.Logger, error) {
	logger, err := f.logger(cmd)
	if err != nil {
		return nil, nil, err
	}
	file, err := f.load()
	if err != nil {
		return nil, nil, err
	}
	m, err := file.Build(machine.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	return m, logger, nil
}

func newRootCmd() *cobra.Command {
	flags := &machineFlags{}
	root := &cobra.Command{
		Use:   "enigma",
		Short: "Enigma is a three-rotor cipher machine",
		Long: `Enigma enciphers upper-case letters with a configurable rotor machine.
Without --config it uses five identity wheels and the reverse reflector.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	flags.AddFlags(root.PersistentFlags())

	root.AddCommand(
		newEncipherCmd(flags),
		newValidateCmd(flags),
		newConfigCmd(flags),
		newVersionCmd(),
	)

	return root
}

// Execute builds the command tree and runs it against os.Args.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
