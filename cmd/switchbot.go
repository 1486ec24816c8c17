package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/switchbot-unlock/internal/pkg/logging"
	"github.com/jake-scott/switchbot-unlock/internal/pkg/opener"
	"github.com/jake-scott/switchbot-unlock/internal/pkg/switchbot"
)

var _switchBotOpts struct {
	token              string
	secret             string
	interphoneDeviceID string
	lockDeviceID       string
	apiURL             string
	apiTimeout         time.Duration
}

// Config keys that must be set before talking to SwitchBot
var switchBotRequired = []string{
	"switchbot.token",
	"switchbot.secret",
	"switchbot.interphone-device-id",
	"switchbot.lock-device-id",
}

func addSwitchBotFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&_switchBotOpts.token, "switchbot-token", "", "SwitchBot API token")
	flags.StringVar(&_switchBotOpts.secret, "switchbot-secret", "", "SwitchBot API secret, used to sign v1.1 requests")
	flags.StringVar(&_switchBotOpts.interphoneDeviceID, "interphone-device-id", "", "device ID of the Bot that presses the interphone button")
	flags.StringVar(&_switchBotOpts.lockDeviceID, "lock-device-id", "", "device ID of the door Lock")
	flags.StringVar(&_switchBotOpts.apiURL, "switchbot-api-url", switchbot.DefaultAPIURL, "SwitchBot API base URL")
	flags.DurationVar(&_switchBotOpts.apiTimeout, "switchbot-timeout", 0, "maximum duration of a SwitchBot API call, eg. 1m or 10s (0 for no limit)")

	errPanic(viper.GetViper().BindPFlag("switchbot.token", flags.Lookup("switchbot-token")))
	errPanic(viper.GetViper().BindPFlag("switchbot.secret", flags.Lookup("switchbot-secret")))
	errPanic(viper.GetViper().BindPFlag("switchbot.interphone-device-id", flags.Lookup("interphone-device-id")))
	errPanic(viper.GetViper().BindPFlag("switchbot.lock-device-id", flags.Lookup("lock-device-id")))
	errPanic(viper.GetViper().BindPFlag("switchbot.api-url", flags.Lookup("switchbot-api-url")))
	errPanic(viper.GetViper().BindPFlag("switchbot.api-timeout", flags.Lookup("switchbot-timeout")))

	// Variable names used by existing deployments
	errPanic(viper.GetViper().BindEnv("switchbot.token", "SWITCH_BOT_TOKEN"))
	errPanic(viper.GetViper().BindEnv("switchbot.secret", "SWITCH_BOT_SECRET"))
	errPanic(viper.GetViper().BindEnv("switchbot.interphone-device-id", "INTERPHONE_BOT_ID"))
	errPanic(viper.GetViper().BindEnv("switchbot.lock-device-id", "LOCK_BOT_ID"))
}

func checkRequiredFlags(needFlags ...string) error {
	missingFlags := []string{}

	for _, f := range needFlags {
		if !viper.IsSet(f) || viper.GetString(f) == "" {
			missingFlags = append(missingFlags, f)
		}
	}

	if len(missingFlags) > 0 {
		itemPlural := "item"
		if len(missingFlags) > 1 {
			itemPlural = "items"
		}
		return fmt.Errorf("required config %s `%s` not set", itemPlural, strings.Join(missingFlags, "`, `"))
	}

	return nil
}

// newOpener builds the SwitchBot client and opener from the loaded config.
// The credentials are fixed for the life of the process.
func newOpener() *opener.Opener {
	creds := switchbot.NewCredentials(viper.GetString("switchbot.token"), viper.GetString("switchbot.secret"))
	devices := opener.Devices{
		InterphoneID: viper.GetString("switchbot.interphone-device-id"),
		LockID:       viper.GetString("switchbot.lock-device-id"),
	}

	logging.Logger(nil).Debugf("SwitchBot credentials: %s, interphone [%s], lock [%s]", creds, devices.InterphoneID, devices.LockID)

	cli := switchbot.NewLiveClient(creds).WithBaseURL(viper.GetString("switchbot.api-url"))
	bot := cli.WithTimeout(viper.GetDuration("switchbot.api-timeout"))

	return opener.New(bot, devices)
}
