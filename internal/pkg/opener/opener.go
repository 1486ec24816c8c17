package opener

import (
	"context"

	"github.com/korovkin/limiter"
	"github.com/pkg/errors"

	"github.com/jake-scott/switchbot-unlock/internal/pkg/logging"
	"github.com/jake-scott/switchbot-unlock/internal/pkg/switchbot"
)

const (
	OutcomeOpen    = "open"
	OutcomeNotOpen = "not open"

	MessageOK = "ok"
)

// ErrInvalidRequest is returned by Open when no action was requested
var ErrInvalidRequest = errors.New(`invalid request. require "isDoorOpen" or "isInterphoneOpen" field.`)

// ActionRequest selects which actuators to trigger
type ActionRequest struct {
	OpenDoor       bool
	OpenInterphone bool
}

// Devices holds the SwitchBot device IDs of the two actuators
type Devices struct {
	InterphoneID string
	LockID       string
}

// Outcome of one action.  The zero value is an action that was not
// attempted.
type Outcome struct {
	Opened bool
	Err    error
}

func (o Outcome) String() string {
	switch {
	case o.Opened:
		return OutcomeOpen
	case o.Err != nil:
		return o.Err.Error()
	}

	return OutcomeNotOpen
}

// Result is the aggregated outcome of an ActionRequest
type Result struct {
	Message        string
	DoorOpen       string
	InterphoneOpen string
}

type Opener struct {
	bot     switchbot.SwitchBot
	devices Devices
}

func New(bot switchbot.SwitchBot, devices Devices) *Opener {
	return &Opener{
		bot:     bot,
		devices: devices,
	}
}

// Open triggers the requested actuators.  The actions are independent: a
// failure of one is reported in its outcome and does not stop the other.
// The only error returned is ErrInvalidRequest.
func (o *Opener) Open(ctx context.Context, req ActionRequest) (Result, error) {
	if !req.OpenDoor && !req.OpenInterphone {
		return Result{
			Message:        ErrInvalidRequest.Error(),
			DoorOpen:       OutcomeNotOpen,
			InterphoneOpen: OutcomeNotOpen,
		}, ErrInvalidRequest
	}

	bot := o.bot.WithContext(ctx)
	var door, interphone Outcome

	limit := limiter.NewConcurrencyLimiter(2)

	if req.OpenInterphone {
		limit.ExecuteWithTicket(func(ticket int) {
			interphone = o.run(ctx, ticket, "interphone", func() error {
				_, err := bot.PressButton(o.devices.InterphoneID)
				return err
			})
		})
	}

	if req.OpenDoor {
		limit.ExecuteWithTicket(func(ticket int) {
			door = o.run(ctx, ticket, "door", func() error {
				_, err := bot.UnlockDoor(o.devices.LockID)
				return err
			})
		})
	}

	limit.Wait()

	return Result{
		Message:        MessageOK,
		DoorOpen:       door.String(),
		InterphoneOpen: interphone.String(),
	}, nil
}

func (o *Opener) run(ctx context.Context, ticket int, action string, fn func() error) Outcome {
	ctxLogger := logging.Logger(ctx).WithField("action", action)
	ctxLogger.Debugf("open-goroutine %d: starting", ticket)

	err := fn()
	if err != nil {
		var vendorErr *switchbot.VendorError
		if errors.As(err, &vendorErr) {
			ctxLogger.WithField("status-code", vendorErr.StatusCode).Warnf("SwitchBot refused command: %s", vendorErr.Message)
		} else {
			ctxLogger.WithError(err).Error("calling SwitchBot")
		}
		return Outcome{Err: err}
	}

	ctxLogger.Info("opened")
	return Outcome{Opened: true}
}
