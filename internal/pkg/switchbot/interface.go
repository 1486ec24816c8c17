package switchbot

import (
	"context"
	"time"
)

// StatusSuccess is the statusCode SwitchBot puts in the response body of a
// command that the device accepted.  It is unrelated to the HTTP status.
const StatusSuccess = 100

// CommandResult is the body of a SwitchBot command response
type CommandResult struct {
	StatusCode int                    `json:"statusCode"`
	Body       map[string]interface{} `json:"body"`
	Message    string                 `json:"message"`
}

type SwitchBot interface {
	WithTimeout(d time.Duration) SwitchBot
	WithContext(ctx context.Context) SwitchBot
	PressButton(deviceID string) (*CommandResult, error)
	UnlockDoor(deviceID string) (*CommandResult, error)
}
