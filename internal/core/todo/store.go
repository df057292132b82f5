// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package todo

import "context"

// Repository defines the data access contract for todo items.
//
// Every operation is a single-row (or single-statement) database action;
// failures surface as [apperr.AppError] values via the dberr bridge.
type Repository interface {
	List(context context.Context) ([]*Todo, error)
	GetByID(context context.Context, id int64) (*Todo, error)
	Create(context context.Context, item *Todo) error
	Update(context context.Context, item *Todo) error
	DeleteByID(context context.Context, id int64) error
	DeleteAll(context context.Context) error
}
