package service

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	apperrors "myroom/pkg/errors"
	"myroom/pkg/model"
)

// BuildQuery encodes p as the query string of the hotel search endpoint.
// Empty strings and nil ids are left out; adults, children and rooms are
// always present.
func BuildQuery(p *model.SearchParameters) string {
	q := url.Values{}

	setString(q, "location", p.Location)
	setString(q, "name", p.Name)
	setInt(q, "name_id", p.NameID)
	setInt(q, "province_id", p.ProvinceID)
	setInt(q, "soum_id", p.SoumID)
	setInt(q, "district", p.District)
	setString(q, "check_in", p.CheckIn)
	setString(q, "check_out", p.CheckOut)
	q.Set("adults", strconv.Itoa(p.Adults))
	q.Set("children", strconv.Itoa(p.Children))
	q.Set("rooms", strconv.Itoa(p.Rooms))
	setString(q, "acc_type", p.AccType)

	return q.Encode()
}

// ParseQuery reads search parameters from a request query. It only rejects
// values that cannot be parsed; the search rules are checked by the validator.
func ParseQuery(q url.Values) (model.SearchParameters, error) {
	p := model.SearchParameters{
		Location: q.Get("location"),
		Name:     q.Get("name"),
		CheckIn:  q.Get("check_in"),
		CheckOut: q.Get("check_out"),
		AccType:  q.Get("acc_type"),
	}

	var err error
	if p.NameID, err = optionalInt(q, "name_id"); err != nil {
		return p, err
	}
	if p.ProvinceID, err = optionalInt(q, "province_id"); err != nil {
		return p, err
	}
	if p.SoumID, err = optionalInt(q, "soum_id"); err != nil {
		return p, err
	}
	if p.District, err = optionalInt(q, "district"); err != nil {
		return p, err
	}
	if p.Adults, err = intOrDefault(q, "adults", 1); err != nil {
		return p, err
	}
	if p.Children, err = intOrDefault(q, "children", 0); err != nil {
		return p, err
	}
	if p.Rooms, err = intOrDefault(q, "rooms", 1); err != nil {
		return p, err
	}
	if p.AccType == "" {
		p.AccType = model.AccTypeAll
	}

	return p, nil
}

func setString(q url.Values, key, value string) {
	if strings.TrimSpace(value) != "" {
		q.Set(key, value)
	}
}

func setInt(q url.Values, key string, value *int) {
	if value != nil {
		q.Set(key, strconv.Itoa(*value))
	}
}

func optionalInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("%s must be an integer", key))
	}
	return &v, nil
}

func intOrDefault(q url.Values, key string, def int) (int, error) {
	v, err := optionalInt(q, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}
