package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"track-builder/internal/config"
	"track-builder/internal/logging"
)

const envPrefix = "TRACKBUILDER"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "trackbuilder",
	Short:        "Lay out cone tracks for autonomous racing",
	SilenceUsage: true,
}

// Execute runs the root command. It is called once by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.trackbuilder.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info",
		"log level (trace, debug, info, warn, error)")
	cobra.CheckErr(viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newFitCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".trackbuilder")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// bindFlags applies config values to command flags the user did not set.
// Dashed flag names map to dotted keys, e.g. --track-width to track.width.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", ".")
		if !f.Changed && v.IsSet(key) {
			val := v.Get(key)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v\n", f.Name, err)
			}
		}
	})
}

// setup resolves the configuration and builds the logger for a command run.
func setup() (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, logging.NewConsole(cfg.LogLevel), nil
}
