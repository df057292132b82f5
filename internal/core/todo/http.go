// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package todo

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/todone-app/todone/internal/platform/apperr"
	"github.com/todone-app/todone/internal/platform/middleware"
	requestutil "github.com/todone-app/todone/internal/platform/request"
	"github.com/todone-app/todone/internal/platform/respond"
	"github.com/todone-app/todone/internal/platform/sec"
	"github.com/todone-app/todone/internal/platform/validate"
)

// Handler implements the todo HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the todo route table.
//
// Every route requires a verified bearer token ([middleware.Authenticate] is
// mounted by the server on this whole subtree). The bulk delete additionally
// requires the admin role. Each path+method pair is registered exactly once.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	// Admin-only bulk delete.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Delete("/", handler.deleteAll)
	})

	return router
}

// # Request Payloads

type createTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type updateTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, items)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createTodoRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// A missing "completed" field decodes to false, which is exactly the
	// documented default.
	item, err := handler.service.Create(request.Context(), CreateInput{
		Title:     input.Title,
		Completed: input.Completed,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, item)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateTodoRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	item, err := handler.service.Update(request.Context(), id, UpdateInput{
		Title:     input.Title,
		Completed: input.Completed,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := parseID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) deleteAll(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteAll(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// parseID extracts the {id} path parameter as an int64.
// A non-numeric id can never match a row, so it maps to NotFound.
func parseID(request *http.Request) (int64, error) {
	idStr := requestutil.Param(request, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, apperr.NotFound("Todo")
	}
	return id, nil
}
