package dashboard

import (
	"testing"

	"gymdash/internal/api"

	"github.com/stretchr/testify/assert"
)

func TestValidateTenantAccess(t *testing.T) {
	t.Run("matching tenant", func(t *testing.T) {
		assert.NoError(t, ValidateTenantAccess("A", "A"))
	})

	t.Run("mismatched tenant", func(t *testing.T) {
		apiErr := asAPIError(t, ValidateTenantAccess("A", "B"))
		assert.Equal(t, api.CodeForbidden, apiErr.Code)
		assert.Equal(t, "Access denied to organization data", apiErr.Message)
	})

	t.Run("no partial matches", func(t *testing.T) {
		assert.Error(t, ValidateTenantAccess("489ff883-138b-44a1-88db-83927b596e35", "489ff883-138b-44a1-88db-83927b596e36"))
	})
}
