package balance

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/leaveplan/leaveplan-backend-go/internal/pkg/validator"
)

// FlexInt tolerates the loose numeric input the balance form historically
// produced: JSON numbers, numeric strings, blank strings, and null all
// decode without error. Missing or non-numeric values become 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}

	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	// Fractional input truncates toward zero, matching parseInt semantics.
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int(fl))
		return nil
	}

	*f = 0
	return nil
}

// UpdateBalanceRequest replaces all three counters atomically.
type UpdateBalanceRequest struct {
	Earned FlexInt `json:"earned"`
	Sick   FlexInt `json:"sick"`
	Casual FlexInt `json:"casual"`
}

func (r *UpdateBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Earned < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "earned",
			Message: "earned must not be negative",
		})
	}
	if r.Sick < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "sick",
			Message: "sick must not be negative",
		})
	}
	if r.Casual < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "casual",
			Message: "casual must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BalanceResponse struct {
	Earned int `json:"earned"`
	Sick   int `json:"sick"`
	Casual int `json:"casual"`
}

func NewBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		Earned: b.Earned,
		Sick:   b.Sick,
		Casual: b.Casual,
	}
}
