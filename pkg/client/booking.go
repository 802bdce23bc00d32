package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"myroom/pkg/model"
)

const (
	pathAvailability   = "/availability/"
	pathBookingCreate  = "/bookings/create/"
	pathBookingCheck   = "/bookings/check/"
	pathBookingCancel  = "/bookings/cancel/"
	pathBookingChange  = "/bookings/change-dates/"
	pathBookingConfirm = "/bookings/confirm/"
)

// BookingClient issues booking lifecycle requests. The booking state machine
// lives on the server; each method maps to one transition and nothing is
// retried.
type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(httpClient *HttpClient) *BookingClient {
	return &BookingClient{
		httpClient: httpClient,
	}
}

func (c *BookingClient) CheckAvailability(ctx context.Context, q model.AvailabilityQuery) (*model.AvailabilityResponse, error) {
	params := url.Values{}
	params.Set("hotel_id", strconv.Itoa(q.HotelID))
	params.Set("room_category_id", strconv.Itoa(q.RoomCategoryID))
	params.Set("room_type_id", strconv.Itoa(q.RoomTypeID))
	params.Set("check_in", q.CheckIn)
	params.Set("check_out", q.CheckOut)

	var out model.AvailabilityResponse
	if err := c.httpClient.call(ctx, "check_availability", http.MethodGet, pathAvailability+"?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BookingClient) CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error) {
	var out model.BookingResponse
	if err := c.httpClient.call(ctx, "create_booking", http.MethodPost, pathBookingCreate, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BookingClient) CheckBooking(ctx context.Context, bookingCode, pinCode string) (*model.BookingDetails, error) {
	params := url.Values{}
	params.Set("booking_code", bookingCode)
	params.Set("pin_code", pinCode)

	var out model.BookingDetails
	if err := c.httpClient.call(ctx, "check_booking", http.MethodGet, pathBookingCheck+"?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BookingClient) CancelBooking(ctx context.Context, req *model.CancelBookingRequest) (*model.BookingActionResponse, error) {
	return c.action(ctx, "cancel_booking", pathBookingCancel, req)
}

func (c *BookingClient) ChangeDates(ctx context.Context, req *model.ChangeDatesRequest) (*model.BookingActionResponse, error) {
	return c.action(ctx, "change_dates", pathBookingChange, req)
}

func (c *BookingClient) ConfirmBooking(ctx context.Context, req *model.ConfirmBookingRequest) (*model.BookingActionResponse, error) {
	return c.action(ctx, "confirm_booking", pathBookingConfirm, req)
}

func (c *BookingClient) action(ctx context.Context, operation, path string, body any) (*model.BookingActionResponse, error) {
	var out model.BookingActionResponse
	if err := c.httpClient.call(ctx, operation, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HotelClient reads hotel details.
type HotelClient struct {
	httpClient *HttpClient
}

func NewHotelClient(httpClient *HttpClient) *HotelClient {
	return &HotelClient{httpClient: httpClient}
}

func (c *HotelClient) GetByID(ctx context.Context, id int) (*model.Hotel, error) {
	var out model.Hotel
	if err := c.httpClient.call(ctx, "get_hotel", http.MethodGet, fmt.Sprintf("/hotels/%d/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchClient runs an already validated hotel search.
type SearchClient struct {
	httpClient *HttpClient
}

func NewSearchClient(httpClient *HttpClient) *SearchClient {
	return &SearchClient{httpClient: httpClient}
}

// SearchHotels sends rawQuery as is; building and validating it is the
// caller's job.
func (c *SearchClient) SearchHotels(ctx context.Context, rawQuery string) (*model.SearchResponse, error) {
	var out model.SearchResponse
	if err := c.httpClient.call(ctx, "search_hotels", http.MethodGet, "/search/hotels/?"+rawQuery, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
