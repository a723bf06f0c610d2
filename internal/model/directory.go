// Copyright (C) 2025 the premier-inn maintainers
// See root-dir/LICENSE for more information

package model

// Hotel is a bookable property. Read-only, sourced from static data.
type Hotel struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Brand string `json:"brand"`
}

// Country carries the dialing code shown next to the phone input.
type Country struct {
	CountryName string `json:"countryName"`
	DialingCode string `json:"dialingCode"`
}
