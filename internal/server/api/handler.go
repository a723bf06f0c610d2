// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

// Package api exposes the JSON endpoints behind the booking form: the
// two lookup services, the submission endpoint and the flattened
// translation bundles.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jeremywohl/flatten/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/vbhvn08/premier-inn/internal/booking"
	"github.com/vbhvn08/premier-inn/internal/db"
	"github.com/vbhvn08/premier-inn/internal/model"
)

func NewHandler(service *booking.Service, directory *booking.Directory, tStore db.TranslationStore) *Handler {
	return &Handler{
		service:   service,
		directory: directory,
		tStore:    tStore,
		logger:    slog.Default().WithGroup("api"),
	}
}

type Handler struct {
	service   *booking.Service
	directory *booking.Directory
	tStore    db.TranslationStore
	logger    *slog.Logger
}

func (h *Handler) Countries(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "Handler.Countries")
	defer span.End()

	countries, err := h.directory.Countries(ctx)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not read countries", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch countries data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

func (h *Handler) Hotels(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "Handler.Hotels")
	defer span.End()

	res, err := h.directory.SearchHotels(ctx, c.Query("query"))
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not search hotels", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hotels data"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// SubmitForm re-validates the posted aggregate and answers with either a
// structured error map or the redirect target carrying the reference
// number.
func (h *Handler) SubmitForm(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "Handler.SubmitForm")
	defer span.End()

	submissionID := uuid.New()

	var form model.BookingForm
	if err := json.NewDecoder(c.Request.Body).Decode(&form); err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not parse booking form", "submission-id", submissionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
		return
	}

	res, err := h.service.Submit(ctx, &form)
	if err != nil {
		var fieldErrs *booking.FieldErrors
		if errors.As(err, &fieldErrs) {
			h.logger.InfoContext(ctx, "booking form rejected",
				"submission-id", submissionID, "kind", fieldErrs.Kind, "fields", len(fieldErrs.Errors))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": fieldErrs.Errors})
			return
		}
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not process booking form", "submission-id", submissionID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
		return
	}

	h.logger.InfoContext(ctx, "booking form submitted",
		"submission-id", submissionID, "reference", res.ReferenceNumber)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     res.Message,
		"redirectUrl": res.RedirectURL,
	})
}

// Translations serves a locale bundle flattened to dot-keyed messages
// for script consumers.
func (h *Handler) Translations(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "Handler.Translations")
	defer span.End()

	locale := c.Param("locale")
	translation, err := h.tStore.ByLanguage(ctx, locale)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
		return
	}

	out, err := json.Marshal(translation)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not marshal translation", "locale", locale, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch translations"})
		return
	}
	flat, err := flatten.FlattenString(string(out), "", flatten.DotStyle)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not flatten translation", "locale", locale, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch translations"})
		return
	}
	messages := make(map[string]any)
	if err := json.Unmarshal([]byte(flat), &messages); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch translations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"locale": locale, "messages": messages})
}
