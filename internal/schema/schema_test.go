// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package schema

import (
	"testing"

	"github.com/vbhvn08/premier-inn/internal/model"
)

func validContact() model.ContactDetails {
	return model.ContactDetails{
		Title:     "mr",
		FirstName: "John",
		LastName:  "Doe",
		Phone:     "1234567890",
		Email:     "john.doe@example.com",
	}
}

func validBooking() model.BookingDetails {
	return model.BookingDetails{
		BookerType:     model.BookerTypePersonal,
		StayingFor:     model.StayPurposeLeisure,
		ReasonForVisit: "leisure",
		Hotel:          "London County Hall",
		CheckIn:        "2025-06-01",
		CheckOut:       "2025-06-03",
	}
}

func validRooms() model.RoomRequirements {
	return model.RoomRequirements{
		SingleOccupancyRooms: 5,
		DoubleOccupancyRooms: 3,
		TwinRooms:            2,
	}
}

func TestValidateContactDetails(t *testing.T) {
	tt := []struct {
		name    string
		mutate  func(*model.ContactDetails)
		path    string
		message string
	}{
		{
			name:   "valid",
			mutate: func(*model.ContactDetails) {},
		},
		{
			name:    "empty title",
			mutate:  func(cd *model.ContactDetails) { cd.Title = "" },
			path:    "contactDetails.title",
			message: "Please select a title",
		},
		{
			name:    "empty first name",
			mutate:  func(cd *model.ContactDetails) { cd.FirstName = "" },
			path:    "contactDetails.firstName",
			message: "First name is required",
		},
		{
			name:    "short first name",
			mutate:  func(cd *model.ContactDetails) { cd.FirstName = "J" },
			path:    "contactDetails.firstName",
			message: "First name must be at least 2 characters",
		},
		{
			name:    "short last name",
			mutate:  func(cd *model.ContactDetails) { cd.LastName = "D" },
			path:    "contactDetails.lastName",
			message: "Last name must be at least 2 characters",
		},
		{
			name:    "phone with letters",
			mutate:  func(cd *model.ContactDetails) { cd.Phone = "0123x456" },
			path:    "contactDetails.phone",
			message: "Phone number must contain only digits",
		},
		{
			name:    "empty phone",
			mutate:  func(cd *model.ContactDetails) { cd.Phone = "" },
			path:    "contactDetails.phone",
			message: "Phone number is required",
		},
		{
			name:    "malformed email",
			mutate:  func(cd *model.ContactDetails) { cd.Email = "john.doe" },
			path:    "contactDetails.email",
			message: "Please enter a valid email address",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			cd := validContact()
			tc.mutate(&cd)
			errs := ValidateContactDetails(&cd)
			if tc.path == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if got := errs[tc.path]; got != tc.message {
				t.Errorf("errs[%q] = %q, want %q", tc.path, got, tc.message)
			}
		})
	}
}

func TestValidateBookingDetails(t *testing.T) {
	tt := []struct {
		name    string
		mutate  func(*model.BookingDetails)
		path    string
		message string
	}{
		{
			name:   "valid",
			mutate: func(*model.BookingDetails) {},
		},
		{
			name:    "missing booker type",
			mutate:  func(bd *model.BookingDetails) { bd.BookerType = "" },
			path:    "bookingDetails.bookerType",
			message: "Please select a type of booker before proceeding.",
		},
		{
			name:    "unknown booker type",
			mutate:  func(bd *model.BookingDetails) { bd.BookerType = "charity" },
			path:    "bookingDetails.bookerType",
			message: "Please select a type of booker before proceeding.",
		},
		{
			name:    "missing staying for",
			mutate:  func(bd *model.BookingDetails) { bd.StayingFor = "" },
			path:    "bookingDetails.stayingFor",
			message: "Please select the nature of your stay.",
		},
		{
			name:    "missing reason",
			mutate:  func(bd *model.BookingDetails) { bd.ReasonForVisit = "" },
			path:    "bookingDetails.reasonForVisit",
			message: "Please select a reason before proceeding.",
		},
		{
			name:    "missing hotel",
			mutate:  func(bd *model.BookingDetails) { bd.Hotel = "" },
			path:    "bookingDetails.hotel",
			message: "Please select the hotel you would like to make a booking.",
		},
		{
			name:    "missing check-in",
			mutate:  func(bd *model.BookingDetails) { bd.CheckIn = "" },
			path:    "bookingDetails.checkIn",
			message: "Please select the dates you would like to make a booking.",
		},
		{
			name:    "check-out before check-in",
			mutate:  func(bd *model.BookingDetails) { bd.CheckIn, bd.CheckOut = "2025-05-05", "2025-05-01" },
			path:    "bookingDetails.checkOut",
			message: "Check-out date must be after check-in date",
		},
		{
			name:    "check-out equals check-in",
			mutate:  func(bd *model.BookingDetails) { bd.CheckOut = bd.CheckIn },
			path:    "bookingDetails.checkOut",
			message: "Check-out date must be after check-in date",
		},
		{
			name:    "unparsable check-out",
			mutate:  func(bd *model.BookingDetails) { bd.CheckOut = "not-a-date" },
			path:    "bookingDetails.checkOut",
			message: "Check-out date must be after check-in date",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			bd := validBooking()
			tc.mutate(&bd)
			errs := ValidateBookingDetails(&bd)
			if tc.path == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if got := errs[tc.path]; got != tc.message {
				t.Errorf("errs[%q] = %q, want %q", tc.path, got, tc.message)
			}
		})
	}
}

func TestValidateRoomRequirements(t *testing.T) {
	tt := []struct {
		name    string
		mutate  func(*model.RoomRequirements)
		path    string
		message string
	}{
		{
			name:   "valid",
			mutate: func(*model.RoomRequirements) {},
		},
		{
			name:   "single room is enough client-side",
			mutate: func(rr *model.RoomRequirements) { rr.SingleOccupancyRooms, rr.DoubleOccupancyRooms, rr.TwinRooms = 1, 0, 0 },
		},
		{
			name:    "no rooms at all",
			mutate:  func(rr *model.RoomRequirements) { rr.SingleOccupancyRooms, rr.DoubleOccupancyRooms, rr.TwinRooms = 0, 0, 0 },
			path:    "roomRequirements.singleOccupancyRooms",
			message: "Please select at least one room",
		},
		{
			name:    "negative twin count",
			mutate:  func(rr *model.RoomRequirements) { rr.TwinRooms = -1 },
			path:    "roomRequirements.twinRooms",
			message: "Number must be greater than or equal to 0",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			rr := validRooms()
			tc.mutate(&rr)
			errs := ValidateRoomRequirements(&rr)
			if tc.path == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if got := errs[tc.path]; got != tc.message {
				t.Errorf("errs[%q] = %q, want %q (all: %v)", tc.path, got, tc.message, errs)
			}
		})
	}
}

func TestValidateAggregate(t *testing.T) {
	contact, booking, rooms := validContact(), validBooking(), validRooms()

	form := &model.BookingForm{
		ContactDetails:   &contact,
		BookingDetails:   &booking,
		RoomRequirements: &rooms,
	}
	if errs := Validate(form); len(errs) != 0 {
		t.Fatalf("expected valid aggregate, got %v", errs)
	}

	form.BookingDetails = nil
	errs := Validate(form)
	if _, ok := errs["bookingDetails"]; !ok {
		t.Fatalf("expected error on missing bookingDetails section, got %v", errs)
	}
	if !errs.Has(SectionBookingDetails) {
		t.Error("Has(bookingDetails) = false, want true")
	}
	if errs.Has(SectionContactDetails) {
		t.Errorf("Has(contactDetails) = true, want false (errs: %v)", errs)
	}
}
