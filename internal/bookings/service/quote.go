package service

import (
	"myroom/pkg/datemath"
	apperrors "myroom/pkg/errors"
	"myroom/pkg/model"
	"myroom/pkg/sanitizer"
)

// Quote prices every room line for the stay between checkIn and checkOut.
// Totals are not rounded.
func Quote(checkIn, checkOut string, rooms []model.BookingRoomDraft) (*model.BookingQuote, error) {
	nights, err := datemath.NightsBetweenStrings(checkIn, checkOut)
	if err != nil {
		return nil, apperrors.InvalidInput(err.Error())
	}

	quote := &model.BookingQuote{
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalNights: nights,
		Rooms:       make([]model.BookingRoom, 0, len(rooms)),
	}

	lines := make([]datemath.Room, 0, len(rooms))
	for _, r := range rooms {
		quote.Rooms = append(quote.Rooms, model.BookingRoom{
			RoomCategoryID: r.RoomCategoryID,
			RoomTypeID:     r.RoomTypeID,
			RoomCount:      r.RoomCount,
			PricePerNight:  r.PricePerNight,
			Nights:         nights,
			TotalPrice:     datemath.RoomTotal(r.PricePerNight, nights, r.RoomCount),
		})
		lines = append(lines, datemath.Room{PricePerNight: r.PricePerNight, RoomCount: r.RoomCount})
	}
	quote.TotalAmount = datemath.BookingTotal(lines, nights)

	return quote, nil
}

// assemble turns a visitor draft into the request sent to the hotel API:
// contact fields are normalized and every total is recomputed.
func assemble(draft *model.BookingDraft) (*model.BookingRequest, error) {
	quote, err := Quote(draft.CheckIn, draft.CheckOut, draft.Rooms)
	if err != nil {
		return nil, err
	}

	phone := sanitizer.NormalizePhone(draft.CustomerPhone)
	if phone == "" {
		// Left as typed so the e164 rule reports it against the field.
		phone = draft.CustomerPhone
	}

	return &model.BookingRequest{
		HotelID:       draft.HotelID,
		CheckIn:       draft.CheckIn,
		CheckOut:      draft.CheckOut,
		CustomerName:  sanitizer.NormalizeText(draft.CustomerName),
		CustomerPhone: phone,
		CustomerEmail: sanitizer.NormalizeEmail(draft.CustomerEmail),
		CustomerNote:  sanitizer.NormalizeText(draft.CustomerNote),
		Rooms:         quote.Rooms,
		TotalNights:   quote.TotalNights,
		TotalAmount:   quote.TotalAmount,
	}, nil
}
