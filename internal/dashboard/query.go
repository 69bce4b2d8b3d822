package dashboard

import (
	"errors"
	"strconv"
	"time"

	"gymdash/internal/api"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const defaultLimit = "25"

// DashboardQuery is the typed form of /dashboard/summary query parameters.
// LocationID distinguishes "absent" (nil pointer) from an explicit "null"
// (also nil after normalization) and a concrete UUID.
type DashboardQuery struct {
	OrgID      string  `form:"orgId" validate:"required,uuid_rfc4122"`
	LocationID *string `form:"locationId" validate:"omitempty,uuid_rfc4122"`
	Range      string  `form:"range" validate:"omitempty,oneof=7d 14d 30d"`
	From       string  `form:"from"`
	To         string  `form:"to"`
}

// ActivityQuery is the typed form of /dashboard/activity query parameters.
// Limit stays a string after validation, defaults applied.
type ActivityQuery struct {
	OrgID      string  `form:"orgId" validate:"required,uuid_rfc4122"`
	LocationID *string `form:"locationId" validate:"omitempty,uuid_rfc4122"`
	Since      string  `form:"since"`
	Limit      string  `form:"limit"`
}

// fieldError maps a struct field to the code and message reported when
// validation fails on it. Order matters: the first matching field wins.
type fieldError struct {
	field   string
	param   string
	code    string
	message string
}

var dashboardFieldErrors = []fieldError{
	{"OrgID", "orgId", api.CodeInvalidOrgID, "orgId must be a valid UUID"},
	{"LocationID", "locationId", api.CodeInvalidLocationID, "locationId must be a valid UUID"},
	{"Range", "range", api.CodeInvalidRange, "range must be one of 7d, 14d, 30d"},
}

var activityFieldErrors = []fieldError{
	{"OrgID", "orgId", api.CodeInvalidOrgID, "orgId must be a valid UUID"},
	{"LocationID", "locationId", api.CodeInvalidLocationID, "locationId must be a valid UUID"},
}

// ValidateDashboardQuery checks orgId, locationId and the range token, and
// applies the default range. The from/to pair is validated separately by
// ResolveDateRange so that format failures and range-logic failures share
// the INVALID_RANGE code family.
func ValidateDashboardQuery(q *DashboardQuery) error {
	normalizeLocation(&q.LocationID)

	if err := validate.Struct(q); err != nil {
		return mapValidationError(err, dashboardFieldErrors)
	}

	if q.Range == "" {
		q.Range = "7d"
	}
	return nil
}

// ValidateActivityQuery checks orgId, locationId, since and limit, applying
// the default limit of 25.
func ValidateActivityQuery(q *ActivityQuery) error {
	normalizeLocation(&q.LocationID)

	if err := validate.Struct(q); err != nil {
		return mapValidationError(err, activityFieldErrors)
	}

	if q.Since != "" {
		if _, err := time.Parse(time.RFC3339, q.Since); err != nil {
			return api.NewError(api.CodeInvalidSince, "since must be a valid ISO-8601 datetime", "since")
		}
	}

	if q.Limit == "" {
		q.Limit = defaultLimit
	}
	n, err := strconv.Atoi(q.Limit)
	if err != nil || n < 1 || n > 100 {
		return api.NewError(api.CodeInvalidLimit, "limit must be a number between 1 and 100", "limit")
	}

	return nil
}

// LimitValue returns the validated limit as an int.
func (q *ActivityQuery) LimitValue() int {
	n, err := strconv.Atoi(q.Limit)
	if err != nil {
		return 25
	}
	return n
}

// SinceValue returns the validated since timestamp, or now minus fallback
// when the parameter was omitted.
func (q *ActivityQuery) SinceValue(fallback time.Duration) time.Time {
	if q.Since == "" {
		return nowFunc().Add(-fallback)
	}
	t, err := time.Parse(time.RFC3339, q.Since)
	if err != nil {
		return nowFunc().Add(-fallback)
	}
	return t
}

// A literal "null" locationId is explicitly allowed and treated the same as
// absent once validated.
func normalizeLocation(loc **string) {
	if *loc != nil && **loc == "null" {
		*loc = nil
	}
}

func mapValidationError(err error, rules []fieldError) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return api.NewError(api.CodeValidation, "invalid query parameters", "")
	}

	for _, rule := range rules {
		for _, fe := range verrs {
			if fe.Field() == rule.field {
				return api.NewError(rule.code, rule.message, rule.param)
			}
		}
	}

	// Fallback for any schema failure not matched by a specific field rule.
	return api.NewError(api.CodeValidation, "invalid query parameters", verrs[0].Field())
}
