package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/taskboard/pkg/task"
)

// TaskRepository implements task.Repository backed by PostgreSQL (pgx).
// Every query past Create filters on owner_id, so a foreign id behaves
// exactly like a missing one.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) (*TaskRepository, error) {
	r := &TaskRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *TaskRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS tasks (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id);
`)
	return err
}

func (r *TaskRepository) Create(ctx context.Context, t task.Task) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO tasks (id, owner_id, title, description, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, t.ID, t.OwnerID, t.Title, t.Description, string(t.Status), t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *TaskRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (task.Task, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, title, description, status, created_at, updated_at
FROM tasks WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanTask(row)
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]task.Task, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, title, description, status, created_at, updated_at
FROM tasks WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TaskRepository) UpdateForOwner(ctx context.Context, t task.Task) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE tasks SET title = $3, description = $4, status = $5, updated_at = $6
WHERE id = $1 AND owner_id = $2
`, t.ID, t.OwnerID, t.Title, t.Description, string(t.Status), t.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM tasks WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	var status string
	var created, updated time.Time
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &status, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, err
	}
	t.Status = task.Status(status)
	t.CreatedAt = created.UTC()
	t.UpdatedAt = updated.UTC()
	return t, nil
}
