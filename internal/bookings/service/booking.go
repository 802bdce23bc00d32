package service

import (
	"context"

	"myroom/internal/bookings/validator"
	"myroom/pkg/client"
	"myroom/pkg/logger"
	"myroom/pkg/model"
)

// BookingAPI is the booking half of the hotel API client.
type BookingAPI interface {
	CheckAvailability(ctx context.Context, q model.AvailabilityQuery) (*model.AvailabilityResponse, error)
	CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error)
	CheckBooking(ctx context.Context, bookingCode, pinCode string) (*model.BookingDetails, error)
	CancelBooking(ctx context.Context, req *model.CancelBookingRequest) (*model.BookingActionResponse, error)
	ChangeDates(ctx context.Context, req *model.ChangeDatesRequest) (*model.BookingActionResponse, error)
	ConfirmBooking(ctx context.Context, req *model.ConfirmBookingRequest) (*model.BookingActionResponse, error)
}

type BookingService interface {
	Quote(checkIn, checkOut string, rooms []model.BookingRoomDraft) (*model.BookingQuote, error)
	BuildRequest(draft *model.BookingDraft) (*model.BookingRequest, error)
	Availability(ctx context.Context, q model.AvailabilityQuery) (*model.AvailabilityResponse, error)
	Create(ctx context.Context, draft *model.BookingDraft) (*model.BookingResponse, error)
	Check(ctx context.Context, bookingCode, pinCode string) (*model.BookingDetails, error)
	Cancel(ctx context.Context, req *model.CancelBookingRequest) (*model.BookingActionResponse, error)
	ChangeDates(ctx context.Context, req *model.ChangeDatesRequest) (*model.BookingActionResponse, error)
	Confirm(ctx context.Context, req *model.ConfirmBookingRequest) (*model.BookingActionResponse, error)
}

type bookingService struct {
	api       BookingAPI
	validator *validator.BookingValidator
	log       *logger.Logger
}

func NewBookingService(api BookingAPI, validator *validator.BookingValidator, log *logger.Logger) BookingService {
	return &bookingService{
		api:       api,
		validator: validator,
		log:       log,
	}
}

func (s *bookingService) Quote(checkIn, checkOut string, rooms []model.BookingRoomDraft) (*model.BookingQuote, error) {
	if err := s.validator.ValidateQuote(checkIn, checkOut, rooms); err != nil {
		return nil, err
	}
	return Quote(checkIn, checkOut, rooms)
}

func (s *bookingService) BuildRequest(draft *model.BookingDraft) (*model.BookingRequest, error) {
	req, err := assemble(draft)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *bookingService) Availability(ctx context.Context, q model.AvailabilityQuery) (*model.AvailabilityResponse, error) {
	if err := s.validator.ValidateAvailability(&q); err != nil {
		return nil, err
	}

	resp, err := s.api.CheckAvailability(ctx, q)
	if err != nil {
		s.log.Warn("Availability check failed", "hotel_id", q.HotelID, "error", err)
		return nil, client.ToAppError(err)
	}
	return resp, nil
}

func (s *bookingService) Create(ctx context.Context, draft *model.BookingDraft) (*model.BookingResponse, error) {
	req, err := s.BuildRequest(draft)
	if err != nil {
		return nil, err
	}

	resp, err := s.api.CreateBooking(ctx, req)
	if err != nil {
		s.log.Error("Failed to create booking", "hotel_id", req.HotelID, "error", err)
		return nil, client.ToAppError(err)
	}

	s.log.Info("Booking created successfully",
		"hotel_id", req.HotelID,
		"booking_code", resp.BookingCode,
		"check_in", req.CheckIn,
		"check_out", req.CheckOut,
		"total_amount", req.TotalAmount,
	)
	return resp, nil
}

func (s *bookingService) Check(ctx context.Context, bookingCode, pinCode string) (*model.BookingDetails, error) {
	if err := s.validator.ValidateAction(&model.ConfirmBookingRequest{BookingCode: bookingCode, PinCode: pinCode}); err != nil {
		return nil, err
	}

	details, err := s.api.CheckBooking(ctx, bookingCode, pinCode)
	if err != nil {
		return nil, client.ToAppError(err)
	}
	return details, nil
}

func (s *bookingService) Cancel(ctx context.Context, req *model.CancelBookingRequest) (*model.BookingActionResponse, error) {
	if err := s.validator.ValidateAction(req); err != nil {
		return nil, err
	}

	resp, err := s.api.CancelBooking(ctx, req)
	if err != nil {
		s.log.Warn("Failed to cancel booking", "booking_code", req.BookingCode, "error", err)
		return nil, client.ToAppError(err)
	}

	s.log.Info("Booking cancelled", "booking_code", req.BookingCode, "status", resp.Status)
	return resp, nil
}

func (s *bookingService) ChangeDates(ctx context.Context, req *model.ChangeDatesRequest) (*model.BookingActionResponse, error) {
	if err := s.validator.ValidateChangeDates(req); err != nil {
		return nil, err
	}

	resp, err := s.api.ChangeDates(ctx, req)
	if err != nil {
		s.log.Warn("Failed to change booking dates", "booking_code", req.BookingCode, "error", err)
		return nil, client.ToAppError(err)
	}

	s.log.Info("Booking dates changed",
		"booking_code", req.BookingCode,
		"new_check_in", req.NewCheckIn,
		"new_check_out", req.NewCheckOut,
	)
	return resp, nil
}

func (s *bookingService) Confirm(ctx context.Context, req *model.ConfirmBookingRequest) (*model.BookingActionResponse, error) {
	if err := s.validator.ValidateAction(req); err != nil {
		return nil, err
	}

	resp, err := s.api.ConfirmBooking(ctx, req)
	if err != nil {
		s.log.Warn("Failed to confirm booking", "booking_code", req.BookingCode, "error", err)
		return nil, client.ToAppError(err)
	}

	s.log.Info("Booking confirmed", "booking_code", req.BookingCode, "status", resp.Status)
	return resp, nil
}
