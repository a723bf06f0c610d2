// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package model

// BookerType identifies on whose behalf a group booking is made.
type BookerType string

const (
	BookerTypePersonal               BookerType = "personal"
	BookerTypeBusiness               BookerType = "business"
	BookerTypeTravelManagement       BookerType = "travelManagementCompany"
	BookerTypeTravelAgentTourOperator BookerType = "travelAgentTourOperator"
)

// StayPurpose is the nature of the stay.
type StayPurpose string

const (
	StayPurposeBusiness StayPurpose = "business"
	StayPurposeLeisure  StayPurpose = "leisure"
)

type ContactDetails struct {
	Title     string `json:"title" form:"title" validate:"required"`
	FirstName string `json:"firstName" form:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" form:"lastName" validate:"required,min=2"`
	Phone     string `json:"phone" form:"phone" validate:"required,number"`
	Email     string `json:"email" form:"email" validate:"required,email"`
}

type BookingDetails struct {
	BookerType           BookerType  `json:"bookerType" form:"bookerType" validate:"required,oneof=personal business travelManagementCompany travelAgentTourOperator"`
	StayingFor           StayPurpose `json:"stayingFor" form:"stayingFor" validate:"required,oneof=business leisure"`
	IsSchoolOrYouthGroup *bool       `json:"isSchoolOrYouthGroup,omitempty" form:"isSchoolOrYouthGroup"`
	ReasonForVisit       string      `json:"reasonForVisit" form:"reasonForVisit" validate:"required"`
	Hotel                string      `json:"hotel" form:"hotel" validate:"required"`
	CheckIn              string      `json:"checkIn" form:"checkIn" validate:"required"`
	CheckOut             string      `json:"checkOut" form:"checkOut" validate:"required"`
}

// TitleValues and ReasonForVisitValues are the accepted identifiers, in
// the order the form renders them. Labels come from the translation
// bundle.
var (
	TitleValues          = []string{"mr", "mrs", "ms", "dr"}
	ReasonForVisitValues = []string{"business", "leisure", "event", "wedding", "other"}
)

// IsSchoolGroup reports whether the school or youth group box is ticked.
func (b BookingDetails) IsSchoolGroup() bool {
	return b.IsSchoolOrYouthGroup != nil && *b.IsSchoolOrYouthGroup
}

type RoomRequirements struct {
	SingleOccupancyRooms  int    `json:"singleOccupancyRooms" form:"singleOccupancyRooms" validate:"min=0"`
	DoubleOccupancyRooms  int    `json:"doubleOccupancyRooms" form:"doubleOccupancyRooms" validate:"min=0"`
	TwinRooms             int    `json:"twinRooms" form:"twinRooms" validate:"min=0"`
	HasChildrenStaying    *bool  `json:"hasChildrenStaying,omitempty" form:"hasChildrenStaying"`
	NeedsAccessibleRoom   *bool  `json:"needsAccessibleRoom,omitempty" form:"needsAccessibleRoom"`
	AdditionalInformation string `json:"additionalInformation,omitempty" form:"additionalInformation"`
}

// ChildrenStaying reports whether the children box is ticked.
func (r RoomRequirements) ChildrenStaying() bool {
	return r.HasChildrenStaying != nil && *r.HasChildrenStaying
}

// AccessibleRoom reports whether an accessible room is requested.
func (r RoomRequirements) AccessibleRoom() bool {
	return r.NeedsAccessibleRoom != nil && *r.NeedsAccessibleRoom
}

// Total is the number of rooms requested across all categories.
func (r *RoomRequirements) Total() int {
	if r == nil {
		return 0
	}
	return r.SingleOccupancyRooms + r.DoubleOccupancyRooms + r.TwinRooms
}

// BookingForm is the aggregate submitted as one JSON object. Sections are
// pointers so that a partially filled draft and an absent section in a
// posted payload stay distinguishable from an all-zero section.
type BookingForm struct {
	ContactDetails   *ContactDetails   `json:"contactDetails" validate:"required"`
	BookingDetails   *BookingDetails   `json:"bookingDetails" validate:"required"`
	RoomRequirements *RoomRequirements `json:"roomRequirements" validate:"required"`
}
