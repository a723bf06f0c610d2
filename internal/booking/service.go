// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

// Package booking implements the submission side of the group booking
// form: full re-validation, the group-size business rules and reference
// number generation.
package booking

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/vbhvn08/premier-inn/internal/model"
	"github.com/vbhvn08/premier-inn/internal/schema"
)

// referencePrefix is the fixed textual prefix of generated booking
// reference numbers, followed by six random digits.
const referencePrefix = "CAS-"

// minGroupRooms is the server-side group booking minimum. It is stricter
// than the client schema on purpose: the form lets a visitor assemble any
// non-empty request, the gate is only applied on submission.
const minGroupRooms = 10

// Rejection kinds, mirrored into logs.
const (
	KindValidation   = "validation-error"
	KindBusinessRule = "business-rule-error"
)

// FieldErrors is a structured rejection of a submission. It is the
// caller's fault, not the server's.
type FieldErrors struct {
	Kind   string
	Errors schema.Errors
}

func (e *FieldErrors) Error() string {
	return fmt.Sprintf("booking: rejected submission (%s, %d fields)", e.Kind, len(e.Errors))
}

// Result of an accepted submission.
type Result struct {
	ReferenceNumber string
	Message         string
	RedirectURL     string
}

func NewService() *Service {
	return &Service{Delay: 500 * time.Millisecond}
}

// Service processes booking form submissions. The zero value is usable
// and skips the simulated processing delay.
type Service struct {
	// Delay is applied before answering a business-rule rejection.
	Delay time.Duration
}

// Submit validates the aggregate and applies the group booking rules, in
// that order; schema failures short-circuit the business rules. A
// *FieldErrors return is a structured rejection, any other error is the
// server's fault.
func (s *Service) Submit(ctx context.Context, form *model.BookingForm) (*Result, error) {
	if errs := schema.Validate(form); len(errs) > 0 {
		return nil, &FieldErrors{Kind: KindValidation, Errors: errs}
	}

	if errs := s.BusinessRuleErrors(form); len(errs) > 0 {
		if err := s.sleep(ctx); err != nil {
			return nil, err
		}
		return nil, &FieldErrors{Kind: KindBusinessRule, Errors: errs}
	}

	ref := referencePrefix + fmt.Sprintf("%d", 100000+rand.Intn(900000))

	params := url.Values{}
	params.Set("ref", ref)
	if cd := form.ContactDetails; cd != nil {
		if cd.Email != "" {
			params.Set("email", cd.Email)
		}
		if cd.FirstName != "" {
			params.Set("firstName", cd.FirstName)
		}
		if cd.LastName != "" {
			params.Set("lastName", cd.LastName)
		}
	}

	return &Result{
		ReferenceNumber: ref,
		Message:         "Booking submitted successfully.",
		RedirectURL:     "/success?" + params.Encode(),
	}, nil
}

// BusinessRuleErrors applies the checks that run on top of the schema:
// date ordering and the group room minimum.
func (s *Service) BusinessRuleErrors(form *model.BookingForm) schema.Errors {
	errs := schema.Errors{}

	if bd := form.BookingDetails; bd != nil && bd.CheckIn != "" && bd.CheckOut != "" {
		in, errIn := time.Parse("2006-01-02", bd.CheckIn)
		out, errOut := time.Parse("2006-01-02", bd.CheckOut)
		if errIn == nil && errOut == nil && !in.Before(out) {
			errs["dateRange"] = "Check-out date must be after check-in date."
		}
	}

	if form.RoomRequirements.Total() < minGroupRooms {
		errs["roomRequirements"] = "Group bookings require a minimum of 10 rooms. Please add more rooms to continue."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// sleep simulates backend processing before a business-rule rejection,
// cut short when the request context ends.
func (s *Service) sleep(ctx context.Context) error {
	if s.Delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.Delay):
		return nil
	}
}
