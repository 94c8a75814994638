// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package page

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velora-app/velora/internal/platform/middleware"
	requestutil "github.com/velora-app/velora/internal/platform/request"
	"github.com/velora-app/velora/internal/platform/respond"
	"github.com/velora-app/velora/internal/platform/validate"
)

// Handler implements the static content page HTTP endpoints.
type Handler struct {
	pageService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{pageService: service}
}

// Routes returns a [chi.Router] configured with page routes.
//
// # Endpoints
//   - GET /{slug} : Returns stored or fallback content (public).
//   - PUT /{slug} : Creates or replaces the content (authenticated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{slug}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Put("/{slug}", handler.put)
	})

	return router
}

type putPageRequest struct {
	Content string `json:"content"`
}

/*
Get returns the content for a slug.

GET /api/v1/pages/{slug}

Description: Never errors on absence; unknown slugs receive their
deterministic fallback snippet.

Response:
  - 200: Page content
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	document, err := handler.pageService.Get(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, document)
}

/*
Put creates or wholesale replaces the content for a slug.

PUT /api/v1/pages/{slug}

Request:
  - Body: putPageRequest (Content)

Response:
  - 200: Persisted page
  - 400: ErrInvalidJSON: Malformed body or empty slug
  - 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) put(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	var input putPageRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("slug", slug)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.pageService.Put(request.Context(), slug, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, document)
}
