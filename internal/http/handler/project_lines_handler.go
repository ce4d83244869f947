package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/service"
)

// ProjectLinesHandler manages the three line collections of a project.
// Each endpoint replaces the full collection: the editing tables on
// the client always send the complete set, so partial updates would
// only invite drift.
type ProjectLinesHandler struct {
	projectService *service.ProjectService
	logger         *zap.Logger
}

func NewProjectLinesHandler(projectService *service.ProjectService, logger *zap.Logger) *ProjectLinesHandler {
	return &ProjectLinesHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ReplaceMaterials godoc
// @Summary Replace material lines
// @Description Replace the full material collection of a project and return the project with recomputed totals
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.ReplaceMaterialLinesRequest true "Material lines"
// @Success 200 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /projects/{id}/materials [put]
func (h *ProjectLinesHandler) ReplaceMaterials(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID: must be a valid UUID")
		return
	}

	var req domain.ReplaceMaterialLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	project, err := h.projectService.ReplaceMaterials(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// ReplaceLabor godoc
// @Summary Replace labor lines
// @Description Replace the full labor collection of a project and return the project with recomputed totals
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.ReplaceLaborLinesRequest true "Labor lines"
// @Success 200 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /projects/{id}/labor [put]
func (h *ProjectLinesHandler) ReplaceLabor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID: must be a valid UUID")
		return
	}

	var req domain.ReplaceLaborLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	project, err := h.projectService.ReplaceLabor(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// ReplaceExtras godoc
// @Summary Replace extra cost lines
// @Description Replace the full extras collection of a project and return the project with recomputed totals
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param request body domain.ReplaceExtraLinesRequest true "Extra cost lines"
// @Success 200 {object} domain.ProjectDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /projects/{id}/extras [put]
func (h *ProjectLinesHandler) ReplaceExtras(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID: must be a valid UUID")
		return
	}

	var req domain.ReplaceExtraLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	project, err := h.projectService.ReplaceExtras(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectLinesHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		respondWithError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, service.ErrLibraryItemNotFound):
		respondWithError(w, http.StatusBadRequest, "Referenced library material not found")
	default:
		h.logger.Error("line replace failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
