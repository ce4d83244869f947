package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/service"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// Get godoc
// @Summary Get workshop settings
// @Description Get the settings singleton. Created with defaults on first access.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} domain.OfferSettingsDTO
// @Failure 500 {object} domain.APIError
// @Router /settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to get settings", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get settings")
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

// Update godoc
// @Summary Update workshop settings
// @Description Apply partial updates to the settings singleton
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateSettingsRequest true "Settings data"
// @Success 200 {object} domain.OfferSettingsDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /settings [patch]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	settings, err := h.settingsService.Update(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to update settings", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	respondJSON(w, http.StatusOK, settings)
}
