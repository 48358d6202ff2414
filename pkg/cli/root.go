// Package cli implements the semtype command line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "SEMTYPE"
	configName = "semtype"

	keyConfig   = "config"
	keyLogLevel = "log-level"
	keyFormat   = "format"
	keyIgnore   = "ignore-exponent"
	keyHistory  = "history"
)

// ErrIncompatible is returned by `compare` when the two types do not match.
var ErrIncompatible = errors.New("types are not compatible")

type app struct {
	v   *viper.Viper
	out io.Writer
	err io.Writer
	log zerolog.Logger
}

// Execute runs the command line tool with the process arguments and exits on
// failure.
func Execute() {
	cmd := NewCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrIncompatible) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// NewCommand builds the root command writing results to out and diagnostics
// to errOut.
func NewCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:   viper.New(),
		out: out,
		err: errOut,
		log: zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:           "semtype",
		Short:         "Parse, normalize and compare ULF semantic types",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (default ./semtype.yaml if present)")
	flags.String(keyLogLevel, "warn", "log level (trace, debug, info, warn, error)")
	flags.StringP(keyFormat, "f", "text", "output format (text, json, yaml)")

	root.AddCommand(
		a.parseCmd(),
		a.compareCmd(),
		a.expandCmd(),
		a.checkCmd(),
		a.dumpCmd(),
		a.replCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.bind(cmd.Flags()); err != nil {
		return err
	}
	if err := a.readConfig(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return errors.Wrapf(err, "invalid %s", keyLogLevel)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.err, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("cmd", cmd.Name()).
		Logger()

	if file := a.v.ConfigFileUsed(); file != "" {
		a.log.Debug().Str("file", file).Msg("loaded config")
	}
	return nil
}

// bind layers settings as flag, then SEMTYPE_* environment, then config file.
func (a *app) bind(flags *pflag.FlagSet) error {
	if err := a.v.BindPFlags(flags); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	a.v.SetDefault(keyHistory, defaultHistory())
	return nil
}

func (a *app) readConfig() error {
	if file := a.v.GetString(keyConfig); file != "" {
		a.v.SetConfigFile(file)
		return errors.Wrapf(a.v.ReadInConfig(), "reading config %s", file)
	}

	a.v.SetConfigName(configName)
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(".")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config")
	}
	return nil
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".semtype_history")
}
