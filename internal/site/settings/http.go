// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package settings

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velora-app/velora/internal/platform/middleware"
	"github.com/velora-app/velora/internal/platform/respond"
	"github.com/velora-app/velora/internal/platform/validate"
)

// maxPayloadBytes bounds the accepted settings document size.
const maxPayloadBytes = 1 << 20

// Handler implements the site configuration HTTP endpoints.
type Handler struct {
	settingsService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{settingsService: service}
}

// Routes returns a [chi.Router] configured with settings routes.
//
// # Endpoints
//   - GET / : Returns the settings document (public).
//   - PUT / : Replaces the settings document (authenticated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Put("/", handler.update)
	})

	return router
}

/*
Get returns the site-wide settings document.

GET /api/v1/settings

Description: Public read used by the storefront on every page render. When
no document exists it is created with defaults, so this never 404s.

Response:
  - 200: Settings document
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.settingsService.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, document)
}

/*
Update replaces the settings document with the submitted full object.

PUT /api/v1/settings

Description: The submitted JSON becomes the new document wholesale. Callers
must submit the complete object; omitted fields revert to defaults.

Request:
  - Body: Full Settings object

Response:
  - 200: Persisted Settings document
  - 400: ErrInvalidJSON: Malformed body
  - 401: ErrUnauthorized: Missing or invalid token
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(request.Body, maxPayloadBytes))
	if err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	document, err := handler.settingsService.Update(request.Context(), payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, document)
}
