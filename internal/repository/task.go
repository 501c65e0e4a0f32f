package repository

import (
	"context"

	"tasktrack/internal/domain"
)

// TaskRepository exposes persistence operations for Task rows. Every read and
// write is scoped to an owner id; a task belonging to someone else behaves
// exactly like a task that does not exist.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	GetByOwner(ctx context.Context, ownerID, id int64) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	DeleteByOwner(ctx context.Context, ownerID, id int64) error
}
