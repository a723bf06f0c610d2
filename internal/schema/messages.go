// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package schema

// messages maps field path -> failed rule -> message. The texts are the
// ones shown in the booking form UI.
var messages = map[string]map[string]string{
	"contactDetails.title": {
		"required": "Please select a title",
	},
	"contactDetails.firstName": {
		"required": "First name is required",
		"min":      "First name must be at least 2 characters",
	},
	"contactDetails.lastName": {
		"required": "Last name is required",
		"min":      "Last name must be at least 2 characters",
	},
	"contactDetails.phone": {
		"required": "Phone number is required",
		"number":   "Phone number must contain only digits",
	},
	"contactDetails.email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
	},
	"bookingDetails.bookerType": {
		"required": "Please select a type of booker before proceeding.",
		"oneof":    "Please select a type of booker before proceeding.",
	},
	"bookingDetails.stayingFor": {
		"required": "Please select the nature of your stay.",
		"oneof":    "Please select the nature of your stay.",
	},
	"bookingDetails.reasonForVisit": {
		"required": "Please select a reason before proceeding.",
	},
	"bookingDetails.hotel": {
		"required": "Please select the hotel you would like to make a booking.",
	},
	"bookingDetails.checkIn": {
		"required": "Please select the dates you would like to make a booking.",
	},
	"bookingDetails.checkOut": {
		"required":               "Please select the dates you would like to make a booking.",
		"checkout_after_checkin": "Check-out date must be after check-in date",
	},
	"roomRequirements.singleOccupancyRooms": {
		"min":       "Number must be greater than or equal to 0",
		"min_rooms": "Please select at least one room",
	},
	"roomRequirements.doubleOccupancyRooms": {
		"min": "Number must be greater than or equal to 0",
	},
	"roomRequirements.twinRooms": {
		"min": "Number must be greater than or equal to 0",
	},
}

func messageFor(path, tag string) string {
	if byTag, ok := messages[path]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	// Absent sections and anything without a curated text.
	if tag == "required" {
		return "Required"
	}
	return "Invalid value"
}
