package handlers

import (
	"context"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/pkg/errors"

	"github.com/jake-scott/switchbot-unlock/generated/models"
	"github.com/jake-scott/switchbot-unlock/internal/pkg/logging"
	"github.com/jake-scott/switchbot-unlock/internal/pkg/opener"
)

// Opener triggers the door and interphone actuators
type Opener interface {
	Open(ctx context.Context, req opener.ActionRequest) (opener.Result, error)
}

/*
 * OpenHandler serves POST /open.  A request that asks for nothing is a
 * 400, anything else is a 200 with the outcome of each action in the body,
 * even when SwitchBot refused or could not be reached.
 */

type OpenHandler struct {
	opener Opener
}

func NewOpenHandler(o Opener) OpenHandler {
	return OpenHandler{
		opener: o,
	}
}

func newOpenResponse(res opener.Result) models.OpenResponse {
	return models.OpenResponse{
		Message: swag.String(res.Message),
		Result: &models.OpenResult{
			DoorOpen:       swag.String(res.DoorOpen),
			InterphoneOpen: swag.String(res.InterphoneOpen),
		},
	}
}

func (h *OpenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.OpenRequest
	ctxLogger := logging.Logger(r.Context())

	if err := decodeJSONBody(w, r, &req); err != nil {
		ctxLogger.WithError(err).Errorf("decoding JSON")
		http.Error(w, "unable to parse JSON", http.StatusBadRequest)
		return
	}

	if err := req.Validate(formats); err != nil {
		ctxLogger.WithError(err).Errorf("request validation failure")
		http.Error(w, "input validation failed", http.StatusBadRequest)
		return
	}

	actions := opener.ActionRequest{
		OpenDoor:       swag.BoolValue(req.IsDoorOpen),
		OpenInterphone: swag.BoolValue(req.IsInterphoneOpen),
	}

	status := http.StatusOK
	res, err := h.opener.Open(r.Context(), actions)
	if err != nil {
		if !errors.Is(err, opener.ErrInvalidRequest) {
			ctxLogger.WithError(err).Error("opening")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctxLogger.Warn("no action requested")
		status = http.StatusBadRequest
	}

	sendJSONResponse(w, r, status, newOpenResponse(res))
}
