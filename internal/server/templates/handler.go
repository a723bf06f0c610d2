// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package templates

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/vbhvn08/premier-inn/internal/db"
	"github.com/vbhvn08/premier-inn/internal/model"
	"github.com/vbhvn08/premier-inn/internal/parser/form"
	"github.com/vbhvn08/premier-inn/internal/schema"
	"github.com/vbhvn08/premier-inn/internal/wizard"
)

//go:embed *.html
var templates embed.FS

func NewBookingHandler(tStore db.TranslationStore, sessions *SessionStore) *BookingHandler {
	coreTemplates := []string{"main.html", "header.html", "footer.html"}
	formTemplates := []string{
		"booking-form.html",
		"contact-section.html",
		"booking-section.html",
		"rooms-section.html",
	}
	successTemplates := []string{"success.html"}

	return &BookingHandler{
		tmplForm:    template.Must(template.ParseFS(templates, append(coreTemplates, formTemplates...)...)),
		tmplSuccess: template.Must(template.ParseFS(templates, append(coreTemplates, successTemplates...)...)),
		tStore:      tStore,
		sessions:    sessions,
		logger:      slog.Default().WithGroup("http"),
	}
}

type BookingHandler struct {
	tmplForm    *template.Template
	tmplSuccess *template.Template
	tStore      db.TranslationStore
	sessions    *SessionStore
	logger      *slog.Logger
}

func (h *BookingHandler) RenderForm(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "BookingHandler.RenderForm")
	defer span.End()

	locale := c.Param("locale")
	translation, err := h.tStore.ByLanguage(ctx, locale)
	if err != nil {
		h.logger.ErrorContext(ctx, "unknown target language", "error", err)
		c.String(http.StatusBadRequest, "unknown target language")
		return
	}

	languages, err := h.languageOptions(c)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not list languages", "error", err)
		c.String(http.StatusInternalServerError, "could not list languages")
		return
	}

	view := h.sessions.Controller(c).View()
	err = h.tmplForm.Execute(c.Writer, gin.H{
		"locale":       locale,
		"translation":  translation,
		"languages":    languages,
		"view":         view,
		"titleValues":  model.TitleValues,
		"reasonValues": model.ReasonForVisitValues,
		"openContact":  view.Visible == wizard.SectionContact,
		"openBooking":  view.Visible == wizard.SectionBooking,
		"openRooms":    view.Visible == wizard.SectionRooms,
	})
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not render booking form", "error", err)
	}
}

// UpdateSection stores one posted section draft and advances to the next
// section.
func (h *BookingHandler) UpdateSection(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "BookingHandler.UpdateSection")
	defer span.End()

	section, ok := sectionFromKey(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not parse form", "error", err)
		c.String(http.StatusBadRequest, "could not parse form")
		return
	}

	ctrl := h.sessions.Controller(c)
	if err := h.updateDraft(c, ctrl, section); err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not parse section input", "section", section.Key(), "error", err)
		c.String(http.StatusBadRequest, "could not parse section input")
		return
	}
	ctrl.Advance(section)

	c.Redirect(http.StatusSeeOther, "/"+c.Param("locale"))
}

func (h *BookingHandler) ToggleSection(c *gin.Context) {
	section, ok := sectionFromKey(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
		return
	}
	h.sessions.Controller(c).Toggle(section)
	c.Redirect(http.StatusSeeOther, "/"+c.Param("locale"))
}

// Submit folds the posted room requirements into the draft and runs the
// wizard submission; success redirects to the localized success page,
// everything else re-renders the form with the stored errors.
func (h *BookingHandler) Submit(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "BookingHandler.Submit")
	defer span.End()

	if err := c.Request.ParseForm(); err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not parse form", "error", err)
		c.String(http.StatusBadRequest, "could not parse form")
		return
	}

	ctrl := h.sessions.Controller(c)
	if len(c.Request.PostForm) > 0 {
		if err := h.updateDraft(c, ctrl, wizard.SectionRooms); err != nil {
			span.RecordError(err)
			h.logger.ErrorContext(ctx, "could not parse section input", "error", err)
			c.String(http.StatusBadRequest, "could not parse section input")
			return
		}
	}

	locale := c.Param("locale")
	if res := ctrl.Submit(ctx); res != nil {
		c.Redirect(http.StatusSeeOther, "/"+locale+res.RedirectURL)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+locale)
}

func (h *BookingHandler) RenderSuccess(c *gin.Context) {
	var span trace.Span
	ctx := c.Request.Context()
	ctx, span = tracer.Start(ctx, "BookingHandler.RenderSuccess")
	defer span.End()

	locale := c.Param("locale")
	translation, err := h.tStore.ByLanguage(ctx, locale)
	if err != nil {
		h.logger.ErrorContext(ctx, "unknown target language", "error", err)
		c.String(http.StatusBadRequest, "unknown target language")
		return
	}
	languages, err := h.languageOptions(c)
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not list languages", "error", err)
		c.String(http.StatusInternalServerError, "could not list languages")
		return
	}

	err = h.tmplSuccess.Execute(c.Writer, gin.H{
		"locale":      locale,
		"translation": translation,
		"languages":   languages,
		"reference":   c.Query("ref"),
		"email":       c.Query("email"),
		"firstName":   c.Query("firstName"),
		"lastName":    c.Query("lastName"),
	})
	if err != nil {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, "could not render success page", "error", err)
	}
}

// updateDraft decodes the posted values into the section's struct and
// hands it to the controller.
func (h *BookingHandler) updateDraft(c *gin.Context, ctrl *wizard.Controller, section wizard.Section) error {
	values := c.Request.PostForm
	switch section {
	case wizard.SectionContact:
		var cd model.ContactDetails
		if err := form.Unmarshal(values, &cd); err != nil {
			return err
		}
		ctrl.UpdateContactDetails(cd)
	case wizard.SectionBooking:
		var bd model.BookingDetails
		if err := form.Unmarshal(values, &bd); err != nil {
			return err
		}
		ctrl.UpdateBookingDetails(c.Request.Context(), bd)
	case wizard.SectionRooms:
		var rr model.RoomRequirements
		if err := form.Unmarshal(values, &rr); err != nil {
			return err
		}
		ctrl.UpdateRoomRequirements(rr)
	}
	return nil
}

func (h *BookingHandler) languageOptions(c *gin.Context) ([]model.LanguageOption, error) {
	langs, err := h.tStore.ListLanguages(c.Request.Context())
	if err != nil {
		return nil, err
	}
	options := make([]model.LanguageOption, 0, len(langs))
	for _, lang := range langs {
		translation, err := h.tStore.ByLanguage(c.Request.Context(), lang)
		if err != nil {
			return nil, err
		}
		options = append(options, model.LanguageOption{Lang: lang, FlagImgSrc: translation.FlagImgSrc})
	}
	return options, nil
}

func sectionFromKey(key string) (wizard.Section, bool) {
	switch key {
	case schema.SectionContactDetails:
		return wizard.SectionContact, true
	case schema.SectionBookingDetails:
		return wizard.SectionBooking, true
	case schema.SectionRoomRequirements:
		return wizard.SectionRooms, true
	}
	return 0, false
}
