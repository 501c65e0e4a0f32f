package service

import (
	"context"
	"errors"
	"strings"

	"tasktrack/internal/auth"
	"tasktrack/internal/domain"
	"tasktrack/internal/repository"
)

// TaskPatch carries the fields of a partial update; nil means "leave as is".
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService coordinates owner-scoped task operations.
type TaskService interface {
	Create(ctx context.Context, identity auth.Identity, title, description string) (*domain.Task, error)
	List(ctx context.Context, identity auth.Identity) ([]domain.Task, error)
	Update(ctx context.Context, identity auth.Identity, taskID int64, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, identity auth.Identity, taskID int64) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, identity auth.Identity, title, description string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validationErr("title is required")
	}

	task := &domain.Task{
		OwnerID:     identity.AccountID,
		Title:       title,
		Description: description,
		Status:      domain.TaskStatusPending,
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, identity auth.Identity) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, identity.AccountID)
}

func (s *taskService) Update(ctx context.Context, identity auth.Identity, taskID int64, patch TaskPatch) (*domain.Task, error) {
	task, err := s.tasks.GetByOwner(ctx, identity.AccountID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, validationErr("title is required")
		}
		task.Title = title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		status, ok := domain.ParseTaskStatus(*patch.Status)
		if !ok {
			return nil, validationErr("invalid status")
		}
		task.Status = status
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, identity auth.Identity, taskID int64) error {
	if err := s.tasks.DeleteByOwner(ctx, identity.AccountID, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}
