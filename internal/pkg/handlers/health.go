package handlers

import (
	"net/http"

	"github.com/jake-scott/switchbot-unlock/version"
)

type healthResult struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthHandler reports liveness.  It never calls SwitchBot.
type HealthHandler struct{}

func (HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sendJSONResponse(w, r, http.StatusOK, healthResult{
		Status:  "ok",
		Version: version.Version,
	})
}
