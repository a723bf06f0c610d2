// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package model

type Translation struct {
	Title      string                 `json:"title" form:"title"`
	Intro      string                 `json:"intro" form:"intro"`
	FlagImgSrc string                 `json:"flag_img_src" form:"flag_img_src"`
	Contact    TranslationContactForm `json:"contact_form" form:"contact_form"`
	Booking    TranslationBookingForm `json:"booking_form" form:"booking_form"`
	Rooms      TranslationRoomsForm   `json:"rooms_form" form:"rooms_form"`
	Error      TranslationError       `json:"error" form:"error"`
	Success    TranslationSuccess     `json:"success" form:"success"`
}

type TranslationContactForm struct {
	SectionTitle         string   `json:"section_title" form:"section_title"`
	LabelTitle           string   `json:"label_title" form:"label_title"`
	TitlePlaceholder     string   `json:"title_placeholder" form:"title_placeholder"`
	TitleOptions         []string `json:"title_options" form:"title_options"`
	FirstNamePlaceholder string   `json:"first_name_placeholder" form:"first_name_placeholder"`
	LastNamePlaceholder  string   `json:"last_name_placeholder" form:"last_name_placeholder"`
	PhonePlaceholder     string   `json:"phone_placeholder" form:"phone_placeholder"`
	EmailPlaceholder     string   `json:"email_placeholder" form:"email_placeholder"`
	LabelButtonContinue  string   `json:"label_button_continue" form:"label_button_continue"`
}

type TranslationBookingForm struct {
	SectionTitle        string   `json:"section_title" form:"section_title"`
	BookerTypeTitle     string   `json:"booker_type_title" form:"booker_type_title"`
	BookerTypeOptions   []string `json:"booker_type_options" form:"booker_type_options"`
	StayingForTitle     string   `json:"staying_for_title" form:"staying_for_title"`
	StayingForOptions   []string `json:"staying_for_options" form:"staying_for_options"`
	SchoolGroupLabel    string   `json:"school_group_label" form:"school_group_label"`
	ReasonTitle         string   `json:"reason_title" form:"reason_title"`
	ReasonOptions       []string `json:"reason_options" form:"reason_options"`
	HotelTitle          string   `json:"hotel_title" form:"hotel_title"`
	HotelPlaceholder    string   `json:"hotel_placeholder" form:"hotel_placeholder"`
	DateRangeLabel      string   `json:"date_range_label" form:"date_range_label"`
	LabelButtonContinue string   `json:"label_button_continue" form:"label_button_continue"`
}

type TranslationRoomsForm struct {
	SectionTitle      string `json:"section_title" form:"section_title"`
	Description       string `json:"description" form:"description"`
	SingleOccupancy   string `json:"single_occupancy" form:"single_occupancy"`
	DoubleOccupancy   string `json:"double_occupancy" form:"double_occupancy"`
	Twin              string `json:"twin" form:"twin"`
	ChildrenStaying   string `json:"children_staying" form:"children_staying"`
	AccessibleNeeded  string `json:"accessible_needed" form:"accessible_needed"`
	AdditionalInfo    string `json:"additional_info" form:"additional_info"`
	LabelButtonSubmit string `json:"label_button_submit" form:"label_button_submit"`
}

type TranslationError struct {
	Title   string `json:"title" form:"title"`
	Process string `json:"process" form:"process"`
}

type TranslationSuccess struct {
	Title        string `json:"title" form:"title"`
	Message      string `json:"message" form:"message"`
	Reference    string `json:"reference" form:"reference"`
	Confirmation string `json:"confirmation" form:"confirmation"`
}

// LanguageOption is what the locale switcher renders per language.
type LanguageOption struct {
	Lang       string `json:"lang" form:"lang"`
	FlagImgSrc string `json:"flagImgSrc" form:"flagImgSrc"`
}
