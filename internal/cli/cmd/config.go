package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

func initConfig() {
	if configFileName != "" {
		viper.SetConfigFile(configFileName)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/hcpinstall/")
		viper.AddConfigPath("/etc/hcpinstall/")
	}

	viper.SetEnvPrefix("HCPINSTALL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// The config file is optional. A missing file is fine; a malformed one is
	// not worth continuing past.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return
		}
		fmt.Fprintf(os.Stderr, "error reading config file: %v\n", err)
		os.Exit(2)
	}
}
