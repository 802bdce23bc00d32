package model

// Hotel is the listing shape returned by the hotel API for search results
// and detail pages. Only the fields the storefront reads are mapped.
type Hotel struct {
	PK           int           `json:"pk"`
	PropertyName string        `json:"property_name"`
	Location     HotelLocation `json:"location"`
	GoogleMap    string        `json:"google_map,omitempty"`
	StarRating   string        `json:"star_rating,omitempty"`
	RatingStars  *RatingStars  `json:"rating_stars,omitempty"`
	Images       []HotelImage  `json:"images,omitempty"`
	CheapestRoom *RoomPrice    `json:"cheapest_room,omitempty"`
	Facilities   []string      `json:"facilities,omitempty"`
}

type HotelLocation struct {
	ProvinceCity string `json:"province_city,omitempty"`
	Soum         string `json:"soum,omitempty"`
	District     string `json:"district,omitempty"`
}

type RatingStars struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

type HotelImage struct {
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

type RoomPrice struct {
	RoomCategoryID int     `json:"room_category_id,omitempty"`
	RoomTypeID     int     `json:"room_type_id,omitempty"`
	PricePerNight  float64 `json:"price_per_night"`
}
