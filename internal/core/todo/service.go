// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package todo

import (
	"context"
	"log/slog"

	"github.com/todone-app/todone/internal/platform/validate"
)

// Service implements the todo use cases on top of the Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the accepted fields for a new todo.
type CreateInput struct {
	Title     string
	Completed bool
}

// UpdateInput holds the full replacement state for an existing todo.
type UpdateInput struct {
	Title     string
	Completed bool
}

func (service *Service) List(context context.Context) ([]*Todo, error) {
	return service.repo.List(context)
}

func (service *Service) Get(context context.Context, id int64) (*Todo, error) {
	return service.repo.GetByID(context, id)
}

func (service *Service) Create(context context.Context, input CreateInput) (*Todo, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, TitleMaxLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	item := &Todo{
		Title:     input.Title,
		Completed: input.Completed,
	}

	if err := service.repo.Create(context, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (service *Service) Update(context context.Context, id int64, input UpdateInput) (*Todo, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, TitleMaxLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	item := &Todo{
		ID:        id,
		Title:     input.Title,
		Completed: input.Completed,
	}

	if err := service.repo.Update(context, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	return service.repo.DeleteByID(context, id)
}

// DeleteAll wipes every todo row. The HTTP layer restricts this operation to
// administrators; the service performs no additional role check.
func (service *Service) DeleteAll(context context.Context) error {
	service.logger.Warn("todo_delete_all_invoked")
	return service.repo.DeleteAll(context)
}
