package errors

import "errors"

var (
	ErrStaleResponse = errors.New("search response superseded by a newer request")

	ErrInvalidDateRange = errors.New("check_out must be after check_in")
)

// Messages of the location exclusivity rules, in the order they are checked.
const (
	MsgNameIDExclusive   = "name_id cannot combine with other location parameters."
	MsgNameExclusive     = "name cannot combine with province_id, soum_id, or location."
	MsgProvinceExclusive = "province_id/soum_id cannot combine with location."
)
