package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	searcherrors "myroom/internal/search/errors"
	"myroom/pkg/datemath"
	apperrors "myroom/pkg/errors"
	"myroom/pkg/logger"
	"myroom/pkg/model"
	"myroom/pkg/validation"
)

type SearchValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewSearchValidator(log *logger.Logger) *SearchValidator {
	log.Info("Search validator initialized successfully")

	return &SearchValidator{
		validate: validation.New(),
		logger:   log,
	}
}

// ValidateLocation applies the location exclusivity rules. The first rule
// that fails decides the error.
func ValidateLocation(p *model.SearchParameters) error {
	hasName := strings.TrimSpace(p.Name) != ""
	hasLocation := strings.TrimSpace(p.Location) != ""
	hasProvinceOrSoum := p.ProvinceID != nil || p.SoumID != nil

	if p.NameID != nil && (hasName || hasProvinceOrSoum || hasLocation) {
		return exclusivityError(searcherrors.MsgNameIDExclusive)
	}
	if hasName && (hasProvinceOrSoum || hasLocation) {
		return exclusivityError(searcherrors.MsgNameExclusive)
	}
	if hasProvinceOrSoum && hasLocation {
		return exclusivityError(searcherrors.MsgProvinceExclusive)
	}
	return nil
}

// Validate runs the exclusivity rules and then the field rules.
func (v *SearchValidator) Validate(p *model.SearchParameters) error {
	if err := ValidateLocation(p); err != nil {
		v.logger.Debug("Search rejected by location rules", "error", err)
		return err
	}

	if err := validation.Struct(v.validate, p); err != nil {
		if verrs, ok := err.(validation.ValidationErrors); ok {
			return verrs.ToAppError()
		}
		return apperrors.Internal("Failed to validate search parameters", err)
	}

	checkIn, _ := datemath.ParseDate(p.CheckIn)
	checkOut, _ := datemath.ParseDate(p.CheckOut)
	if !checkOut.After(checkIn) {
		return validation.ValidationErrors{
			validation.ValidationError{
				Field:   "check_out",
				Message: searcherrors.ErrInvalidDateRange.Error(),
			},
		}.ToAppError()
	}

	return nil
}

func exclusivityError(msg string) *apperrors.AppError {
	return apperrors.Validation(msg, map[string]any{"rule": "location_exclusivity"})
}
