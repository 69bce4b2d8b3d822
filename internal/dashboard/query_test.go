package dashboard

import (
	"errors"
	"testing"

	"gymdash/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validOrgID = "489ff883-138b-44a1-88db-83927b596e35"

func asAPIError(t *testing.T, err error) *api.Error {
	t.Helper()
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr), "expected *api.Error, got %v", err)
	return apiErr
}

func TestValidateDashboardQuery(t *testing.T) {
	t.Run("valid orgId with range", func(t *testing.T) {
		q := DashboardQuery{OrgID: validOrgID, Range: "14d"}
		require.NoError(t, ValidateDashboardQuery(&q))

		assert.Equal(t, validOrgID, q.OrgID)
		assert.Nil(t, q.LocationID)
		assert.Equal(t, "14d", q.Range)
	})

	t.Run("missing orgId", func(t *testing.T) {
		q := DashboardQuery{}
		apiErr := asAPIError(t, ValidateDashboardQuery(&q))
		assert.Equal(t, api.CodeInvalidOrgID, apiErr.Code)
	})

	t.Run("malformed orgId", func(t *testing.T) {
		for _, bad := range []string{"not-a-uuid", "489ff883-138b-04a1-88db-83927b596e35", "489ff883138b44a188db83927b596e35"} {
			q := DashboardQuery{OrgID: bad}
			apiErr := asAPIError(t, ValidateDashboardQuery(&q))
			assert.Equal(t, api.CodeInvalidOrgID, apiErr.Code, bad)
		}
	})

	t.Run("uppercase UUID accepted", func(t *testing.T) {
		q := DashboardQuery{OrgID: "489FF883-138B-44A1-88DB-83927B596E35"}
		assert.NoError(t, ValidateDashboardQuery(&q))
	})

	t.Run("range defaults to 7d", func(t *testing.T) {
		q := DashboardQuery{OrgID: validOrgID}
		require.NoError(t, ValidateDashboardQuery(&q))
		assert.Equal(t, "7d", q.Range)
	})

	t.Run("unknown range token", func(t *testing.T) {
		q := DashboardQuery{OrgID: validOrgID, Range: "90d"}
		apiErr := asAPIError(t, ValidateDashboardQuery(&q))
		assert.Equal(t, api.CodeInvalidRange, apiErr.Code)
	})

	t.Run("malformed locationId", func(t *testing.T) {
		bad := "gym-1"
		q := DashboardQuery{OrgID: validOrgID, LocationID: &bad}
		apiErr := asAPIError(t, ValidateDashboardQuery(&q))
		assert.Equal(t, api.CodeInvalidLocationID, apiErr.Code)
	})

	t.Run("literal null locationId allowed", func(t *testing.T) {
		null := "null"
		q := DashboardQuery{OrgID: validOrgID, LocationID: &null}
		require.NoError(t, ValidateDashboardQuery(&q))
		assert.Nil(t, q.LocationID)
	})

	t.Run("orgId failure wins over locationId failure", func(t *testing.T) {
		bad := "also-bad"
		q := DashboardQuery{OrgID: "bad", LocationID: &bad}
		apiErr := asAPIError(t, ValidateDashboardQuery(&q))
		assert.Equal(t, api.CodeInvalidOrgID, apiErr.Code)
	})

	t.Run("validation is idempotent", func(t *testing.T) {
		q := DashboardQuery{OrgID: validOrgID, Range: "30d"}
		require.NoError(t, ValidateDashboardQuery(&q))
		first := q
		require.NoError(t, ValidateDashboardQuery(&q))
		assert.Equal(t, first, q)

		bad := DashboardQuery{OrgID: "nope"}
		err1 := ValidateDashboardQuery(&bad)
		err2 := ValidateDashboardQuery(&bad)
		assert.Equal(t, err1, err2)
	})
}

func TestValidateActivityQuery(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		q := ActivityQuery{OrgID: validOrgID}
		require.NoError(t, ValidateActivityQuery(&q))
		assert.Equal(t, "25", q.Limit)
		assert.Equal(t, 25, q.LimitValue())
	})

	t.Run("limit bounds", func(t *testing.T) {
		for _, bad := range []string{"0", "150", "-3", "abc", "1.5"} {
			q := ActivityQuery{OrgID: validOrgID, Limit: bad}
			apiErr := asAPIError(t, ValidateActivityQuery(&q))
			assert.Equal(t, api.CodeInvalidLimit, apiErr.Code, bad)
		}
		for _, good := range []string{"1", "100", "42"} {
			q := ActivityQuery{OrgID: validOrgID, Limit: good}
			assert.NoError(t, ValidateActivityQuery(&q), good)
		}
	})

	t.Run("malformed since", func(t *testing.T) {
		q := ActivityQuery{OrgID: validOrgID, Since: "yesterday"}
		apiErr := asAPIError(t, ValidateActivityQuery(&q))
		assert.Equal(t, api.CodeInvalidSince, apiErr.Code)
	})

	t.Run("valid since", func(t *testing.T) {
		q := ActivityQuery{OrgID: validOrgID, Since: "2025-08-10T00:00:00.000Z"}
		require.NoError(t, ValidateActivityQuery(&q))
		assert.Equal(t, 2025, q.SinceValue(0).Year())
	})

	t.Run("missing orgId", func(t *testing.T) {
		q := ActivityQuery{Limit: "10"}
		apiErr := asAPIError(t, ValidateActivityQuery(&q))
		assert.Equal(t, api.CodeInvalidOrgID, apiErr.Code)
	})
}
