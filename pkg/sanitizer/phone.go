package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used for numbers written without a country code.
const DefaultRegion = "MN"

func NormalizePhone(phone string) string {
	return NormalizePhoneForRegion(phone, DefaultRegion)
}

func NormalizePhoneForRegion(phone, region string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	parsedNumber, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return ""
	}
	return phonenumbers.Format(parsedNumber, phonenumbers.E164)
}
