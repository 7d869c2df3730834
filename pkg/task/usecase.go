package task

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase exposes owner-scoped task operations. The owner id always
// comes from the authenticated request identity, never from client
// input.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, title, description string) (Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Task, error)
	GetOwned(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	UpdateOwned(ctx context.Context, ownerID, id uuid.UUID, patch Patch) (Task, error)
	DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, title, description string) (Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return Task{}, ErrValidation("title is required")
	}
	if description == "" {
		return Task{}, ErrValidation("description is required")
	}

	now := time.Now().UTC()
	t := Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Task, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) GetOwned(ctx context.Context, ownerID, id uuid.UUID) (Task, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

// UpdateOwned resolves ownership before mutating, so a blind write can
// never touch (or reveal the existence of) a foreign row, and the
// returned task reflects state the caller was authorized to read.
func (s *service) UpdateOwned(ctx context.Context, ownerID, id uuid.UUID, patch Patch) (Task, error) {
	t, err := s.repo.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return Task{}, err
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return Task{}, ErrValidation("title must not be empty")
		}
		t.Title = title
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		if description == "" {
			return Task{}, ErrValidation("description must not be empty")
		}
		t.Description = description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	t.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateForOwner(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *service) DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error {
	// Same resolve-first rule as UpdateOwned.
	if _, err := s.repo.GetForOwner(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}
