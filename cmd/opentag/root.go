package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	cfg       Config
	configErr error // from initConfig, reported by PersistentPreRunE
)

var rootCmd = &cobra.Command{
	Use:           "opentag",
	Short:         "HTML open tag parser",
	Long:          "opentag parses single HTML-like open tags such as <div width=\"40\", height=\"30\"> into a name and attributes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		loaded, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = loaded
		log.Logger = newLogger(cfg, cmd.ErrOrStderr())
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug().Str("file", used).Msg("loaded config")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./opentag.{yaml,toml,json} if present)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text, json, yaml or toml")
	rootCmd.PersistentFlags().String("hasher", "builtin", "Attribute key hasher: builtin, fnv, maphash or xxhash")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("hasher", rootCmd.PersistentFlags().Lookup("hasher"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("OPENTAG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("opentag")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

// newLogger builds the console logger. Warnings and errors are always shown,
// --verbose adds info and --debug adds debug events.
func newLogger(c Config, w io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	if c.Verbose {
		level = zerolog.InfoLevel
	}
	if c.Debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
