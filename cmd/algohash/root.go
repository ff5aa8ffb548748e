package main

import (
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vocdoni/algohash"
)

const defaultInstance = "rescue-prime-64-8-4"

// app carries the state shared by every command. Each root command owns its
// own viper instance so tests can build several trees side by side.
type app struct {
	v   *viper.Viper
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "algohash",
		Short:         "Algebraic sponge hashes over Goldilocks, F63 and Stark252",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}
	root.PersistentFlags().AddFlagSet(globalFlags())
	if err := a.v.BindPFlags(root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.listCmd(),
		a.hashCmd(),
		a.hashBytesCmd(),
		a.mergeCmd(),
		a.merkleCmd(),
		a.selftestCmd(),
	)
	return root
}

func globalFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("algohash", pflag.ContinueOnError)
	fs.String("config", "", "config file (default is $HOME/.algohash.yaml)")
	fs.StringP("instance", "i", defaultInstance, "instantiation to use, see 'algohash list'")
	fs.String("format", "dec", "digest output format: dec or hex")
	fs.Int("workers", 4, "goroutines used to hash each merkle level")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	return fs
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return errors.Wrap(err, "locate home directory")
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".algohash")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("ALGOHASH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	readErr := a.v.ReadInConfig()
	if _, notFound := readErr.(viper.ConfigFileNotFoundError); readErr != nil && !notFound {
		return errors.Wrap(readErr, "read config")
	}

	level, err := zerolog.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}).
		Level(level).With().Timestamp().Logger()
	if readErr == nil {
		a.log.Debug().Str("file", a.v.ConfigFileUsed()).Msg("using config file")
	}

	switch f := a.v.GetString("format"); f {
	case "dec", "hex":
	default:
		return errors.Errorf("unknown format %q, want dec or hex", f)
	}
	if a.v.GetInt("workers") < 1 {
		return errors.New("workers must be at least 1")
	}
	return nil
}

func (a *app) instance() (algohash.Instance, error) {
	name := a.v.GetString("instance")
	in, err := algohash.Lookup(name)
	if err != nil {
		return nil, errors.Wrap(err, "select instance")
	}
	a.log.Debug().Str("instance", name).Msg("selected instance")
	return in, nil
}
