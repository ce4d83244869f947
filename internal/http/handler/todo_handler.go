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

type TodoHandler struct {
	todoService *service.TodoService
	logger      *zap.Logger
}

func NewTodoHandler(todoService *service.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// List godoc
// @Summary List order-list entries
// @Description Get all order-list entries, open first
// @Tags Todos
// @Accept json
// @Produce json
// @Success 200 {array} domain.TodoItemDTO
// @Failure 500 {object} domain.APIError
// @Router /todos [get]
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.todoService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list todos", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list todos")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// Create godoc
// @Summary Create order-list entry
// @Tags Todos
// @Accept json
// @Produce json
// @Param request body domain.CreateTodoRequest true "Todo data"
// @Success 201 {object} domain.TodoItemDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /todos [post]
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	item, err := h.todoService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create todo", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create todo")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// Toggle godoc
// @Summary Toggle order-list entry
// @Description Flip the completed flag of an entry
// @Tags Todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID" format(uuid)
// @Success 200 {object} domain.TodoItemDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /todos/{id}/toggle [post]
func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID: must be a valid UUID")
		return
	}

	item, err := h.todoService.Toggle(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete order-list entry
// @Tags Todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID" format(uuid)
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID: must be a valid UUID")
		return
	}

	if err := h.todoService.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (h *TodoHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTodoNotFound):
		respondWithError(w, http.StatusNotFound, "Todo item not found")
	default:
		h.logger.Error("todo operation failed", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
