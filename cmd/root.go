package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/switchbot-unlock/internal/pkg/logging"
)

var _rootCmdOpts struct {
	configFile  string
	debug       bool
	logLocation string
	logLevel    string
	logFormat   string
}

var rootCmd = &cobra.Command{
	Use:   "switchbot-unlock",
	Short: "Open the door and interphone through the SwitchBot cloud API",

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}

		return logging.Configure(viper.GetViper())
	},
}

// Execute runs the selected sub-command, exiting non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Logger(nil).WithError(err).Error("exiting")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&_rootCmdOpts.configFile, "config", "", "config file (default is $HOME/.switchbot-unlock.yaml)")
	rootCmd.PersistentFlags().BoolVar(&_rootCmdOpts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&_rootCmdOpts.logLocation, "log-location", "stderr", "stdout, stderr or a file name")
	rootCmd.PersistentFlags().StringVar(&_rootCmdOpts.logLevel, "log-level", "info", "log level: error, warn, info or debug")
	rootCmd.PersistentFlags().StringVar(&_rootCmdOpts.logFormat, "log-format", "text", "log format: text or json")

	errPanic(viper.GetViper().BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")))
	errPanic(viper.GetViper().BindPFlag("logging.location", rootCmd.PersistentFlags().Lookup("log-location")))
	errPanic(viper.GetViper().BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level")))
	errPanic(viper.GetViper().BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format")))

	addSwitchBotFlags(rootCmd)
}

func initConfig() {
	if _rootCmdOpts.configFile != "" {
		viper.SetConfigFile(_rootCmdOpts.configFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".switchbot-unlock")
	}

	viper.SetEnvPrefix("SWITCHBOT_UNLOCK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logging.Logger(nil).Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else if _rootCmdOpts.configFile != "" {
		fmt.Fprintf(os.Stderr, "reading config file %s: %s\n", _rootCmdOpts.configFile, err)
		os.Exit(1)
	}
}

func errPanic(err error) {
	if err != nil {
		panic(err)
	}
}
