package http

import (
	"log/slog"
	"net/http"

	"github.com/estruturasdovale/sige-backend-go/internal/config"
	"github.com/estruturasdovale/sige-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Refresh(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settings *config.LaborSettings
}

func NewSettingsHandler(settings *config.LaborSettings) SettingsHandler {
	return &SettingsHandlerImpl{settings: settings}
}

// Refresh implements SettingsHandler. It re-reads the labor parameters
// from the environment without a restart.
func (h *SettingsHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.settings.Reload(); err != nil {
		slog.Error("Failed to reload labor settings", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	slog.Info("Labor settings reloaded")
	response.SuccessWithMessage(w, "Labor settings reloaded", nil)
}
