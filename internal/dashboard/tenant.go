package dashboard

import (
	"gymdash/internal/api"
	"gymdash/internal/metrics"
)

// ValidateTenantAccess rejects any request whose orgId does not exactly match
// the authenticated caller's company. No partial matches, no hierarchy.
func ValidateTenantAccess(callerCompanyID, orgID string) error {
	if callerCompanyID != orgID {
		metrics.RecordTenantAccessDenied()
		return api.Forbidden()
	}
	return nil
}
