package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jake-scott/switchbot-unlock/internal/pkg/logging"
	"github.com/jake-scott/switchbot-unlock/internal/pkg/opener"
)

var _openCmdOpts struct {
	door       bool
	interphone bool
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the door and/or interphone once, without running the server",

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := doOpen(); err != nil {
			return err
		}

		return nil
	},

	PreRunE: func(cmd *cobra.Command, args []string) error {
		return checkRequiredFlags(switchBotRequired...)
	},
}

func init() {
	openCmd.Flags().BoolVar(&_openCmdOpts.door, "door", false, "unlock the door")
	openCmd.Flags().BoolVar(&_openCmdOpts.interphone, "interphone", false, "press the interphone button")

	errPanic(viper.GetViper().BindPFlag("open.door", openCmd.Flags().Lookup("door")))
	errPanic(viper.GetViper().BindPFlag("open.interphone", openCmd.Flags().Lookup("interphone")))

	rootCmd.AddCommand(openCmd)
}

type openResult struct {
	Message        string `json:"message"`
	DoorOpen       string `json:"doorOpen"`
	InterphoneOpen string `json:"interphoneOpen"`
}

func doOpen() error {
	req := opener.ActionRequest{
		OpenDoor:       viper.GetBool("open.door"),
		OpenInterphone: viper.GetBool("open.interphone"),
	}

	// ctrl-c abandons the in-flight SwitchBot calls
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	res, err := newOpener().Open(ctx, req)
	if err != nil {
		return fmt.Errorf("pass --door and/or --interphone: %w", err)
	}

	logging.Logger(nil).Debugf("open result: %+v", res)

	b, err := json.MarshalIndent(openResult(res), "", "    ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))
	return nil
}
