package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	bookingserrors "myroom/internal/bookings/errors"
	"myroom/pkg/datemath"
	apperrors "myroom/pkg/errors"
	"myroom/pkg/logger"
	"myroom/pkg/model"
	"myroom/pkg/validation"
)

var bookingCodeRegex = regexp.MustCompile(`^[A-Za-z0-9-]{4,32}$`)

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validation.New()

	if err := v.RegisterValidation("booking_code", validateBookingCode); err != nil {
		log.Fatal("Failed to register 'booking_code' validator",
			"error", err,
		)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

func validateBookingCode(fl validator.FieldLevel) bool {
	return bookingCodeRegex.MatchString(fl.Field().String())
}

func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if len(req.Rooms) == 0 {
		return fieldError("rooms", bookingserrors.ErrNoRooms.Error())
	}
	if err := v.structure(req); err != nil {
		return err
	}
	return dateOrder("check_out", req.CheckIn, req.CheckOut)
}

type quoteInput struct {
	CheckIn  string                   `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string                   `json:"check_out" validate:"required,datetime=2006-01-02"`
	Rooms    []model.BookingRoomDraft `json:"rooms" validate:"dive"`
}

// ValidateQuote applies the room line rules of a booking to a price quote.
func (v *BookingValidator) ValidateQuote(checkIn, checkOut string, rooms []model.BookingRoomDraft) error {
	if len(rooms) == 0 {
		return fieldError("rooms", bookingserrors.ErrNoRooms.Error())
	}
	if err := v.structure(&quoteInput{CheckIn: checkIn, CheckOut: checkOut, Rooms: rooms}); err != nil {
		return err
	}
	return dateOrder("check_out", checkIn, checkOut)
}

func (v *BookingValidator) ValidateAvailability(q *model.AvailabilityQuery) error {
	if err := v.structure(q); err != nil {
		return err
	}
	return dateOrder("check_out", q.CheckIn, q.CheckOut)
}

func (v *BookingValidator) ValidateChangeDates(req *model.ChangeDatesRequest) error {
	if err := v.structure(req); err != nil {
		return err
	}
	return dateOrder("new_check_out", req.NewCheckIn, req.NewCheckOut)
}

// ValidateAction checks the booking code and pin of cancel and confirm
// requests.
func (v *BookingValidator) ValidateAction(req any) error {
	return v.structure(req)
}

func (v *BookingValidator) structure(s any) error {
	if err := validation.Struct(v.validate, s); err != nil {
		if verrs, ok := err.(validation.ValidationErrors); ok {
			return verrs.ToAppError()
		}
		return apperrors.Internal("Failed to validate booking", err)
	}
	return nil
}

// dateOrder expects both dates to have passed the datetime tag already.
func dateOrder(field, checkIn, checkOut string) error {
	in, errIn := datemath.ParseDate(checkIn)
	out, errOut := datemath.ParseDate(checkOut)
	if errIn != nil || errOut != nil || !out.After(in) {
		return fieldError(field, bookingserrors.ErrInvalidDateRange.Error())
	}
	return nil
}

func fieldError(field, message string) error {
	return validation.ValidationErrors{
		validation.ValidationError{Field: field, Message: message},
	}.ToAppError()
}
