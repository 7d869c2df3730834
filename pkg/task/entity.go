package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task. Wire values are the
// human-readable spellings persisted since the first schema version.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// ParseStatus validates a client-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Task is owned by exactly one user; OwnerID is set at creation and
// never reassigned.
type Task struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Title       *string
	Description *string
	Status      *Status
}

var (
	// ErrNotFound covers both an absent id and an id owned by someone
	// else; callers cannot tell the two apart.
	ErrNotFound = errors.New("task not found")
)

// Repository is the persistence port for tasks. Every read/write beyond
// Create carries the owner id and must only touch rows whose owner_id
// matches it.
type Repository interface {
	Create(ctx context.Context, t Task) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Task, error)
	UpdateForOwner(ctx context.Context, t Task) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
