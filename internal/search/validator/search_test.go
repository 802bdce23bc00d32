package validator

import (
	"testing"

	searcherrors "myroom/internal/search/errors"
	apperrors "myroom/pkg/errors"
	"myroom/pkg/logger"
	"myroom/pkg/model"
)

func intPtr(v int) *int { return &v }

func baseParams() model.SearchParameters {
	return model.SearchParameters{
		CheckIn:  "2025-07-01",
		CheckOut: "2025-07-03",
		Adults:   2,
		Children: 0,
		Rooms:    1,
		AccType:  model.AccTypeHotel,
	}
}

func TestValidateLocation_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *model.SearchParameters)
		wantMsg string
	}{
		{
			name: "name_id with name",
			mutate: func(p *model.SearchParameters) {
				p.NameID = intPtr(5)
				p.Name = "Blue Sky"
			},
			wantMsg: searcherrors.MsgNameIDExclusive,
		},
		{
			name: "name_id with everything reports name_id rule first",
			mutate: func(p *model.SearchParameters) {
				p.NameID = intPtr(5)
				p.Name = "Blue Sky"
				p.ProvinceID = intPtr(1)
				p.Location = "Ulaanbaatar"
			},
			wantMsg: searcherrors.MsgNameIDExclusive,
		},
		{
			name: "name_id with soum",
			mutate: func(p *model.SearchParameters) {
				p.NameID = intPtr(5)
				p.SoumID = intPtr(3)
			},
			wantMsg: searcherrors.MsgNameIDExclusive,
		},
		{
			name: "name with province",
			mutate: func(p *model.SearchParameters) {
				p.Name = "Blue Sky"
				p.ProvinceID = intPtr(1)
			},
			wantMsg: searcherrors.MsgNameExclusive,
		},
		{
			name: "name with location and soum reports name rule",
			mutate: func(p *model.SearchParameters) {
				p.Name = "Blue Sky"
				p.SoumID = intPtr(2)
				p.Location = "Terelj"
			},
			wantMsg: searcherrors.MsgNameExclusive,
		},
		{
			name: "soum with location",
			mutate: func(p *model.SearchParameters) {
				p.SoumID = intPtr(2)
				p.Location = "Terelj"
			},
			wantMsg: searcherrors.MsgProvinceExclusive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.mutate(&p)

			err := ValidateLocation(&p)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeValidation {
				t.Errorf("expected validation code, got %s", appErr.Code)
			}
			if appErr.Message != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, appErr.Message)
			}
		})
	}
}

// Every combination of the five location fields: valid exactly when at most
// one exclusivity group is populated.
func TestValidateLocation_AllCombinations(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		p := baseParams()
		groups := map[string]bool{}

		if mask&1 != 0 {
			p.NameID = intPtr(10)
			groups["name_id"] = true
		}
		if mask&2 != 0 {
			p.Name = "Khan Palace"
			groups["name"] = true
		}
		if mask&4 != 0 {
			p.ProvinceID = intPtr(1)
			groups["admin"] = true
		}
		if mask&8 != 0 {
			p.SoumID = intPtr(2)
			groups["admin"] = true
		}
		if mask&16 != 0 {
			p.Location = "Ulaanbaatar"
			groups["location"] = true
		}

		err := ValidateLocation(&p)
		wantValid := len(groups) <= 1
		if wantValid && err != nil {
			t.Errorf("mask %05b: expected valid, got %v", mask, err)
		}
		if !wantValid && err == nil {
			t.Errorf("mask %05b: expected exclusivity error", mask)
		}
	}
}

func TestValidateLocation_BlankStringsAreUnset(t *testing.T) {
	p := baseParams()
	p.Name = "   "
	p.Location = ""
	p.ProvinceID = intPtr(1)

	if err := ValidateLocation(&p); err != nil {
		t.Errorf("blank name should not count as set, got %v", err)
	}
}

func TestSearchValidator_FieldRules(t *testing.T) {
	v := NewSearchValidator(logger.Discard())

	tests := []struct {
		name      string
		mutate    func(p *model.SearchParameters)
		wantField string
	}{
		{name: "valid", mutate: func(p *model.SearchParameters) {}},
		{name: "valid with district", mutate: func(p *model.SearchParameters) { p.ProvinceID = intPtr(1); p.District = intPtr(4) }},
		{name: "missing check_in", mutate: func(p *model.SearchParameters) { p.CheckIn = "" }, wantField: "check_in"},
		{name: "malformed check_out", mutate: func(p *model.SearchParameters) { p.CheckOut = "03/07/2025" }, wantField: "check_out"},
		{name: "zero adults", mutate: func(p *model.SearchParameters) { p.Adults = 0 }, wantField: "adults"},
		{name: "negative children", mutate: func(p *model.SearchParameters) { p.Children = -1 }, wantField: "children"},
		{name: "zero rooms", mutate: func(p *model.SearchParameters) { p.Rooms = 0 }, wantField: "rooms"},
		{name: "missing acc_type", mutate: func(p *model.SearchParameters) { p.AccType = "" }, wantField: "acc_type"},
		{name: "check_out same day", mutate: func(p *model.SearchParameters) { p.CheckOut = p.CheckIn }, wantField: "check_out"},
		{name: "check_out before check_in", mutate: func(p *model.SearchParameters) { p.CheckOut = "2025-06-30" }, wantField: "check_out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.mutate(&p)

			err := v.Validate(&p)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error on %s", tt.wantField)
			}
			appErr := apperrors.AsAppError(err)
			fields, _ := appErr.Details["fields"].(map[string]any)
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("expected error on %s, got details %v", tt.wantField, appErr.Details)
			}
		})
	}
}

func TestSearchValidator_ExclusivityBeforeFieldRules(t *testing.T) {
	v := NewSearchValidator(logger.Discard())
	p := baseParams()
	p.Adults = 0
	p.Name = "Blue Sky"
	p.Location = "Terelj"

	err := v.Validate(&p)
	if err == nil || apperrors.AsAppError(err).Message != searcherrors.MsgNameExclusive {
		t.Errorf("expected exclusivity error first, got %v", err)
	}
}
