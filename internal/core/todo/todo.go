// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

// Package todo implements the todo resource: entity, storage contract, and
// the HTTP CRUD surface protected by the authentication gates.
package todo

import "time"

// Todo represents a single task item.
type Todo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Field identifiers used in validation errors.
const (
	FieldTitle = "title"
)

// TitleMaxLength bounds titles to keep rows and indexes small.
const TitleMaxLength = 255
