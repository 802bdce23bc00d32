package model

// Accommodation types accepted by the search endpoint.
const (
	AccTypeHotel = "hotel"
	AccTypeCamp  = "camp"
	AccTypeAll   = "all"
)

// SearchParameters is the hotel search request. The location is picked by
// exactly one of: NameID, Name, ProvinceID/SoumID, Location.
type SearchParameters struct {
	Location   string `json:"location,omitempty"`
	Name       string `json:"name,omitempty"`
	NameID     *int   `json:"name_id,omitempty"`
	ProvinceID *int   `json:"province_id,omitempty"`
	SoumID     *int   `json:"soum_id,omitempty"`
	District   *int   `json:"district,omitempty"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Adults     int    `json:"adults" validate:"min=1,max=50"`
	Children   int    `json:"children" validate:"min=0,max=50"`
	Rooms      int    `json:"rooms" validate:"min=1,max=50"`
	AccType    string `json:"acc_type" validate:"required"`
}

type SearchResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next,omitempty"`
	Previous *string `json:"previous,omitempty"`
	Results  []Hotel `json:"results"`
}

// Location suggestion kinds, as produced by the location autocomplete.
const (
	SuggestionProvince = "province"
	SuggestionSoum     = "soum"
	SuggestionDistrict = "district"
	SuggestionHotel    = "hotel"
	SuggestionLocation = "location"
)

type LocationSuggestion struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	FullLocation string `json:"fullLocation,omitempty"`
	Type         string `json:"type"`
	ProvinceID   *int   `json:"provinceId,omitempty"`
	SoumID       *int   `json:"soumId,omitempty"`
	DistrictID   *int   `json:"districtId,omitempty"`
	NameID       *int   `json:"nameId,omitempty"`
}

type RecentSearch struct {
	Location LocationSuggestion `json:"location"`
	CheckIn  string             `json:"checkIn"`
	CheckOut string             `json:"checkOut"`
	Adults   int                `json:"adults"`
	Children int                `json:"children"`
	Rooms    int                `json:"rooms"`
}
