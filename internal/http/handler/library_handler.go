package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/domain"
	"github.com/meubelwerk/offerte-api/internal/service"
)

type LibraryHandler struct {
	libraryService *service.LibraryService
	logger         *zap.Logger
}

func NewLibraryHandler(libraryService *service.LibraryService, logger *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		libraryService: libraryService,
		logger:         logger,
	}
}

// List godoc
// @Summary List library materials
// @Description Get paginated material catalog with optional search and category filter
// @Tags Library
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(50)
// @Param search query string false "Search in description and supplier"
// @Param category query string false "Filter by category" Enums(sheet_good, solid_wood, hardware, finishing, electrical, spray_finish, other)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.LibraryMaterialDTO}
// @Failure 500 {object} domain.APIError
// @Router /library [get]
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 50
	}
	if pageSize > 200 {
		pageSize = 200
	}

	search := r.URL.Query().Get("search")
	category := domain.MaterialCategory(r.URL.Query().Get("category"))

	result, err := h.libraryService.List(r.Context(), page, pageSize, search, category)
	if err != nil {
		h.logger.Error("failed to list library materials", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list library materials")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Create godoc
// @Summary Create library material
// @Description Add a material to the catalog
// @Tags Library
// @Accept json
// @Produce json
// @Param request body domain.CreateLibraryMaterialRequest true "Material data"
// @Success 201 {object} domain.LibraryMaterialDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /library [post]
func (h *LibraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLibraryMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	item, err := h.libraryService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create library material", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create library material")
		return
	}

	w.Header().Set("Location", "/api/v1/library/"+item.ID.String())
	respondJSON(w, http.StatusCreated, item)
}

// GetByID godoc
// @Summary Get library material by ID
// @Tags Library
// @Accept json
// @Produce json
// @Param id path string true "Material ID" format(uuid)
// @Success 200 {object} domain.LibraryMaterialDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /library/{id} [get]
func (h *LibraryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid material ID: must be a valid UUID")
		return
	}

	item, err := h.libraryService.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Update godoc
// @Summary Update library material
// @Description Update a catalog entry. Project lines that copied this material keep their prices.
// @Tags Library
// @Accept json
// @Produce json
// @Param id path string true "Material ID" format(uuid)
// @Param request body domain.UpdateLibraryMaterialRequest true "Material data"
// @Success 200 {object} domain.LibraryMaterialDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /library/{id} [patch]
func (h *LibraryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid material ID: must be a valid UUID")
		return
	}

	var req domain.UpdateLibraryMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	item, err := h.libraryService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete library material
// @Tags Library
// @Accept json
// @Produce json
// @Param id path string true "Material ID" format(uuid)
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /library/{id} [delete]
func (h *LibraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid material ID: must be a valid UUID")
		return
	}

	if err := h.libraryService.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (h *LibraryHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrLibraryItemNotFound):
		respondWithError(w, http.StatusNotFound, "Library material not found")
	default:
		h.logger.Error("library operation failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
