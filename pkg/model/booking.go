package model

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type BookingRoom struct {
	RoomCategoryID int     `json:"room_category_id" validate:"required,min=1"`
	RoomTypeID     int     `json:"room_type_id" validate:"required,min=1"`
	RoomCount      int     `json:"room_count" validate:"min=1,max=50"`
	PricePerNight  float64 `json:"price_per_night" validate:"min=0"`
	Nights         int     `json:"nights" validate:"min=0"`
	TotalPrice     float64 `json:"total_price" validate:"min=0"`
}

type BookingRequest struct {
	HotelID       int           `json:"hotel_id" validate:"required,min=1"`
	CheckIn       string        `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut      string        `json:"check_out" validate:"required,datetime=2006-01-02"`
	CustomerName  string        `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerPhone string        `json:"customer_phone" validate:"required,e164"`
	CustomerEmail string        `json:"customer_email" validate:"omitempty,email"`
	CustomerNote  string        `json:"customer_note,omitempty" validate:"omitempty,max=500"`
	Rooms         []BookingRoom `json:"rooms" validate:"required,min=1,dive"`
	TotalNights   int           `json:"total_nights" validate:"min=1"`
	TotalAmount   float64       `json:"total_amount" validate:"min=0"`
}

// BookingDraft is what the visitor fills in. Nights and totals are derived
// from it when the BookingRequest is assembled.
type BookingDraft struct {
	HotelID       int                `json:"hotel_id"`
	CheckIn       string             `json:"check_in"`
	CheckOut      string             `json:"check_out"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	CustomerEmail string             `json:"customer_email"`
	CustomerNote  string             `json:"customer_note,omitempty"`
	Rooms         []BookingRoomDraft `json:"rooms"`
}

type BookingRoomDraft struct {
	RoomCategoryID int     `json:"room_category_id" validate:"required,min=1"`
	RoomTypeID     int     `json:"room_type_id" validate:"required,min=1"`
	RoomCount      int     `json:"room_count" validate:"min=1,max=50"`
	PricePerNight  float64 `json:"price_per_night" validate:"min=0"`
}

type BookingQuote struct {
	CheckIn     string        `json:"check_in"`
	CheckOut    string        `json:"check_out"`
	TotalNights int           `json:"total_nights"`
	Rooms       []BookingRoom `json:"rooms"`
	TotalAmount float64       `json:"total_amount"`
}

type AvailabilityQuery struct {
	HotelID        int    `json:"hotel_id" validate:"required,min=1"`
	RoomCategoryID int    `json:"room_category_id" validate:"required,min=1"`
	RoomTypeID     int    `json:"room_type_id" validate:"required,min=1"`
	CheckIn        string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut       string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

type AvailabilityResponse struct {
	Available      bool    `json:"available"`
	AvailableRooms int     `json:"available_rooms"`
	PricePerNight  float64 `json:"price_per_night,omitempty"`
}

type BookingResponse struct {
	BookingID   int     `json:"booking_id,omitempty"`
	BookingCode string  `json:"booking_code"`
	PinCode     string  `json:"pin_code,omitempty"`
	Status      string  `json:"status,omitempty"`
	TotalAmount float64 `json:"total_amount,omitempty"`
	Message     string  `json:"message,omitempty"`
}

type BookingDetails struct {
	BookingCode   string        `json:"booking_code"`
	Status        string        `json:"status"`
	HotelID       int           `json:"hotel_id"`
	HotelName     string        `json:"hotel_name,omitempty"`
	CheckIn       string        `json:"check_in"`
	CheckOut      string        `json:"check_out"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	Rooms         []BookingRoom `json:"rooms,omitempty"`
	TotalNights   int           `json:"total_nights"`
	TotalAmount   float64       `json:"total_amount"`
}

type CancelBookingRequest struct {
	BookingCode string `json:"booking_code" validate:"required,booking_code"`
	PinCode     string `json:"pin_code" validate:"required,max=20"`
	Reason      string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type ChangeDatesRequest struct {
	BookingCode string `json:"booking_code" validate:"required,booking_code"`
	PinCode     string `json:"pin_code" validate:"required,max=20"`
	NewCheckIn  string `json:"new_check_in" validate:"required,datetime=2006-01-02"`
	NewCheckOut string `json:"new_check_out" validate:"required,datetime=2006-01-02"`
}

type ConfirmBookingRequest struct {
	BookingCode string `json:"booking_code" validate:"required,booking_code"`
	PinCode     string `json:"pin_code" validate:"required,max=20"`
}

// BookingActionResponse is the body returned by cancel, change-dates and confirm.
type BookingActionResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message,omitempty"`
	BookingCode string  `json:"booking_code,omitempty"`
	Status      string  `json:"status,omitempty"`
	TotalAmount float64 `json:"total_amount,omitempty"`
}
