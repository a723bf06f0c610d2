// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

// Package schema holds the declarative validation rules for the group
// booking form. Validation is pure and total: a candidate record either
// passes or yields a map of dotted field paths to human readable messages.
package schema

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vbhvn08/premier-inn/internal/model"
)

// Section keys, also the JSON keys of the aggregate.
const (
	SectionContactDetails   = "contactDetails"
	SectionBookingDetails   = "bookingDetails"
	SectionRoomRequirements = "roomRequirements"
)

// Errors maps a dotted field path (e.g. "contactDetails.email") to a
// message suitable for display next to the field.
type Errors map[string]string

// Has reports whether any error path belongs to the given section key.
func (e Errors) Has(section string) bool {
	for path := range e {
		if path == section || strings.HasPrefix(path, section+".") {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(checkDateOrder, model.BookingDetails{})
	v.RegisterStructValidation(checkRoomCount, model.RoomRequirements{})
	return v
}

// checkDateOrder rejects a check-out that is not strictly after check-in.
// Runs only once both dates are present, absence is handled by "required".
func checkDateOrder(sl validator.StructLevel) {
	bd := sl.Current().Interface().(model.BookingDetails)
	if bd.CheckIn == "" || bd.CheckOut == "" {
		return
	}
	in, errIn := parseDate(bd.CheckIn)
	out, errOut := parseDate(bd.CheckOut)
	if errIn != nil || errOut != nil || !out.After(in) {
		sl.ReportError(bd.CheckOut, "checkOut", "CheckOut", "checkout_after_checkin", "")
	}
}

// checkRoomCount enforces the client-side minimum of one room in total.
// The submission endpoint applies the stricter group minimum on top.
func checkRoomCount(sl validator.StructLevel) {
	rr := sl.Current().Interface().(model.RoomRequirements)
	if rr.Total() <= 0 {
		sl.ReportError(rr.SingleOccupancyRooms, "singleOccupancyRooms", "SingleOccupancyRooms", "min_rooms", "")
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Validate checks the full aggregate and returns nil when it is valid.
func Validate(form *model.BookingForm) Errors {
	if form == nil {
		return Errors{
			SectionContactDetails:   messageFor(SectionContactDetails, "required"),
			SectionBookingDetails:   messageFor(SectionBookingDetails, "required"),
			SectionRoomRequirements: messageFor(SectionRoomRequirements, "required"),
		}
	}
	return collect(validate.Struct(form), "")
}

// ValidateContactDetails checks a single section; error paths carry the
// section prefix so they can be routed like aggregate errors.
func ValidateContactDetails(cd *model.ContactDetails) Errors {
	if cd == nil {
		return Errors{SectionContactDetails: messageFor(SectionContactDetails, "required")}
	}
	return collect(validate.Struct(cd), SectionContactDetails)
}

func ValidateBookingDetails(bd *model.BookingDetails) Errors {
	if bd == nil {
		return Errors{SectionBookingDetails: messageFor(SectionBookingDetails, "required")}
	}
	return collect(validate.Struct(bd), SectionBookingDetails)
}

func ValidateRoomRequirements(rr *model.RoomRequirements) Errors {
	if rr == nil {
		return Errors{SectionRoomRequirements: messageFor(SectionRoomRequirements, "required")}
	}
	return collect(validate.Struct(rr), SectionRoomRequirements)
}

func collect(err error, prefix string) Errors {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// A non-struct input is a programming error, surface it on the root.
		return Errors{"": err.Error()}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		path := relativePath(fe.Namespace())
		if prefix != "" {
			path = prefix + "." + path
		}
		out[path] = messageFor(path, fe.Tag())
	}
	return out
}

// relativePath drops the leading struct name from a validator namespace,
// leaving the dotted json path ("BookingForm.contactDetails.email" ->
// "contactDetails.email").
func relativePath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
