// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

// Package wizard owns the state of one visitor's pass through the three
// booking form sections: the aggregate draft, which section is expanded,
// the submission lifecycle and the routing of server errors back to the
// section that owns them.
package wizard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/vbhvn08/premier-inn/internal/booking"
	"github.com/vbhvn08/premier-inn/internal/model"
	"github.com/vbhvn08/premier-inn/internal/schema"
)

// Section is the exclusive-visibility state of the wizard. Exactly one
// section is expanded at any time.
type Section int

const (
	SectionContact Section = iota
	SectionBooking
	SectionRooms
)

// sectionOrder is the fixed order used when routing errors to the
// earliest section that owns one.
var sectionOrder = []Section{SectionContact, SectionBooking, SectionRooms}

// Key is the section's aggregate key, shared with the validation schema
// and the server error paths.
func (s Section) Key() string {
	switch s {
	case SectionBooking:
		return schema.SectionBookingDetails
	case SectionRooms:
		return schema.SectionRoomRequirements
	default:
		return schema.SectionContactDetails
	}
}

// Next is the forward navigation step. Rooms is terminal.
func (s Section) Next() Section {
	switch s {
	case SectionContact:
		return SectionBooking
	default:
		return SectionRooms
	}
}

// Submitter is the submission endpoint boundary. A *booking.FieldErrors
// return is a structured rejection, a *ServerMessageError carries a
// general failure message, anything else counts as a transport failure.
type Submitter interface {
	Submit(ctx context.Context, form *model.BookingForm) (*booking.Result, error)
}

// ServerMessageError is a non-success answer without a field map.
type ServerMessageError struct {
	Message string
}

func (e *ServerMessageError) Error() string {
	return "wizard: submission refused: " + e.Message
}

// genericSubmitError is shown when the transport itself failed.
const genericSubmitError = "An unexpected error occurred. Please try again."

// defaultSubmitError is shown for a refusal that carried no message.
const defaultSubmitError = "Failed to submit form. Please try again."

func NewController(submitter Submitter, search *HotelSearch) *Controller {
	return &Controller{
		submitter: submitter,
		search:    search,
		logger:    slog.Default().WithGroup("wizard"),
	}
}

// Controller is the sole owner of the aggregate draft and the section
// visibility state. Section forms hand their local drafts upward through
// the Update methods, nothing shares mutable state with the controller.
type Controller struct {
	submitter Submitter
	search    *HotelSearch
	logger    *slog.Logger

	mu              sync.Mutex
	draft           model.BookingForm
	visible         Section
	submitting      bool
	submissionError string
	serverErrors    schema.Errors
	suggestions     []model.Hotel
}

// View is an immutable snapshot of the controller state for rendering.
type View struct {
	Contact         model.ContactDetails
	Booking         model.BookingDetails
	Rooms           model.RoomRequirements
	Visible         Section
	Submitting      bool
	SubmissionError string
	ServerErrors    schema.Errors
	Suggestions     []model.Hotel
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Visible:         c.visible,
		Submitting:      c.submitting,
		SubmissionError: c.submissionError,
		ServerErrors:    make(schema.Errors, len(c.serverErrors)),
		Suggestions:     append([]model.Hotel(nil), c.suggestions...),
	}
	for path, msg := range c.serverErrors {
		v.ServerErrors[path] = msg
	}
	if c.draft.ContactDetails != nil {
		v.Contact = *c.draft.ContactDetails
	}
	if c.draft.BookingDetails != nil {
		v.Booking = *c.draft.BookingDetails
	}
	if c.draft.RoomRequirements != nil {
		v.Rooms = *c.draft.RoomRequirements
	}
	return v
}

// UpdateContactDetails replaces the contact section of the draft.
func (c *Controller) UpdateContactDetails(cd model.ContactDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.ContactDetails = &cd
	c.clearServerErrorsLocked()
}

// UpdateBookingDetails replaces the booking section of the draft and
// kicks off a debounced hotel lookup when the hotel text changed.
func (c *Controller) UpdateBookingDetails(ctx context.Context, bd model.BookingDetails) {
	c.mu.Lock()
	prevHotel := ""
	if c.draft.BookingDetails != nil {
		prevHotel = c.draft.BookingDetails.Hotel
	}
	c.draft.BookingDetails = &bd
	c.clearServerErrorsLocked()
	if bd.Hotel == prevHotel {
		c.mu.Unlock()
		return
	}
	if len(bd.Hotel) < 2 {
		c.suggestions = nil
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if c.search == nil {
		return
	}
	c.search.Search(context.WithoutCancel(ctx), bd.Hotel, func(hotels []model.Hotel) {
		c.mu.Lock()
		c.suggestions = hotels
		c.mu.Unlock()
	})
}

// UpdateRoomRequirements replaces the rooms section of the draft.
func (c *Controller) UpdateRoomRequirements(rr model.RoomRequirements) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.RoomRequirements = &rr
	c.clearServerErrorsLocked()
}

// Stale once the visitor edits anything.
func (c *Controller) clearServerErrorsLocked() {
	if len(c.serverErrors) > 0 {
		c.serverErrors = nil
	}
}

// Advance moves forward from the given section. Rooms is terminal for
// forward navigation.
func (c *Controller) Advance(from Section) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = from.Next()
}

// Toggle expands exactly the given section, collapsing the others.
func (c *Controller) Toggle(section Section) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = section
}

// Submit runs the submission state machine. A nil result means the
// submission did not succeed and the controller state carries why; the
// caller re-renders from View. A second trigger while one submission is
// outstanding is ignored.
func (c *Controller) Submit(ctx context.Context) *booking.Result {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil
	}
	c.submitting = true
	c.submissionError = ""
	c.serverErrors = nil

	form := &model.BookingForm{
		ContactDetails:   c.draft.ContactDetails,
		BookingDetails:   c.draft.BookingDetails,
		RoomRequirements: c.draft.RoomRequirements,
	}

	if errs := schema.Validate(form); len(errs) > 0 {
		c.serverErrors = errs
		c.openEarliestLocked(errs)
		c.submitting = false
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	res, err := c.submitter.Submit(ctx, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if err != nil {
		var fieldErrs *booking.FieldErrors
		var serverMsg *ServerMessageError
		switch {
		case errors.As(err, &fieldErrs):
			c.serverErrors = fieldErrs.Errors
			c.openEarliestLocked(fieldErrs.Errors)
		case errors.As(err, &serverMsg):
			c.submissionError = serverMsg.Message
			if c.submissionError == "" {
				c.submissionError = defaultSubmitError
			}
		default:
			c.logger.ErrorContext(ctx, "could not submit booking form", "error", err)
			c.submissionError = genericSubmitError
		}
		return nil
	}

	c.draft = model.BookingForm{}
	c.visible = SectionContact
	c.suggestions = nil
	return res
}

// openEarliestLocked expands the first section, in fixed order, that owns
// one of the error paths. Paths outside every section (e.g. "dateRange")
// leave the visibility untouched.
func (c *Controller) openEarliestLocked(errs schema.Errors) {
	for _, section := range sectionOrder {
		if errs.Has(section.Key()) {
			c.visible = section
			return
		}
	}
}
