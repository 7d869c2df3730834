package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/taskboard/api/http/presenter"
	"github.com/artem13815/taskboard/pkg/security/jwt"
	"github.com/artem13815/taskboard/pkg/task"
)

type TaskHandler struct {
	uc task.UseCase
}

func NewTaskHandler(uc task.UseCase) *TaskHandler { return &TaskHandler{uc: uc} }

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(t task.Task) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		OwnerID:     t.OwnerID.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// owner pulls the authenticated user id injected by the JWT middleware.
func owner(c *fiber.Ctx) (uuid.UUID, error) {
	user, ok := jwt.CurrentUser(c)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	return user.ID, nil
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create adds a task owned by the authenticated user.
// @Summary Create task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   input body createTaskRequest true "task payload"
// @Security BearerAuth
// @Success 201 {object} taskResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	ownerID, err := owner(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	t, err := h.uc.Create(c.Context(), ownerID, req.Title, req.Description)
	if err != nil {
		var verr task.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		log.Printf("create task: %v", err)
		return presenter.Error(c, http.StatusBadRequest, "failed to create task")
	}
	return presenter.JSON(c, http.StatusCreated, toTaskResponse(t))
}

// List returns the authenticated user's tasks.
// @Summary List tasks
// @Tags    tasks
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} taskResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	ownerID, err := owner(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	limit, offset := parseLimitOffset(c, 50)

	tasks, err := h.uc.ListByOwner(c.Context(), ownerID, limit, offset)
	if err != nil {
		log.Printf("list tasks: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to list tasks")
	}
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// GetByID returns a single owned task.
// @Summary Get task
// @Tags    tasks
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} taskResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	ownerID, err := owner(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// An unparseable id can't name an owned task.
		return presenter.Error(c, http.StatusNotFound, "task not found")
	}

	t, err := h.uc.GetOwned(c.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "task not found")
		}
		log.Printf("get task: %v", err)
		return presenter.Error(c, http.StatusBadRequest, "failed to get task")
	}
	return presenter.JSON(c, http.StatusOK, toTaskResponse(t))
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Update applies a partial update to an owned task.
// @Summary Update task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Param   input body updateTaskRequest true "fields to change"
// @Security BearerAuth
// @Success 200 {object} taskResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [patch]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	ownerID, err := owner(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "task not found")
	}
	var req updateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	patch := task.Patch{Title: req.Title, Description: req.Description}
	if req.Status != nil {
		status, err := task.ParseStatus(*req.Status)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		patch.Status = &status
	}

	t, err := h.uc.UpdateOwned(c.Context(), ownerID, id, patch)
	if err != nil {
		var verr task.ErrValidation
		switch {
		case errors.Is(err, task.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "task not found")
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		default:
			log.Printf("update task: %v", err)
			return presenter.Error(c, http.StatusBadRequest, "failed to update task")
		}
	}
	return presenter.JSON(c, http.StatusOK, toTaskResponse(t))
}

// Delete removes an owned task.
// @Summary Delete task
// @Tags    tasks
// @Produce json
// @Param   id path string true "task ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	ownerID, err := owner(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "unauthenticated")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "task not found")
	}

	if err := h.uc.DeleteOwned(c.Context(), ownerID, id); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "task not found")
		}
		log.Printf("delete task: %v", err)
		return presenter.Error(c, http.StatusBadRequest, "failed to delete task")
	}
	return presenter.Message(c, http.StatusOK, "task deleted")
}
