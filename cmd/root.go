/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "palettegen",
	Short: "Generates sets of distinguishable, accessible colors",
	Long: `palettegen searches for palettes whose colors stay mutually
distinguishable under normal vision and under simulated color vision
deficiencies (protanopia, deuteranopia, tritanopia), while staying close to
a configurable set of reference colors.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.palettegen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log optimizer progress")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	viper.SetDefault("weights.energy", 1.0)
	viper.SetDefault("weights.target", 1.0)
	viper.SetDefault("weights.range", 1.0)
	viper.SetDefault("weights.protanopia", 0.33)
	viper.SetDefault("weights.deuteranopia", 0.33)
	viper.SetDefault("weights.tritanopia", 0.33)
	viper.SetDefault("temperature", 1000.0)
	viper.SetDefault("cooling", 0.99)
	viper.SetDefault("cutoff", 0.0001)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".palettegen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".palettegen")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file: %s", viper.ConfigFileUsed())
	}
}
