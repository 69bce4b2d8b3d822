package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"gymdash/internal/api"
	"gymdash/internal/auth"
	"gymdash/internal/cache"
	"gymdash/internal/config"
	"gymdash/internal/logger"
	"gymdash/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// activitySinceFallback bounds the feed when the caller omits since.
const activitySinceFallback = 24 * time.Hour

type Handler struct {
	svc   Service
	cache *cache.Cache
}

// NewHandler wires the dashboard read stack. summaryCache may be nil, which
// disables caching entirely.
func NewHandler(db *sqlx.DB, cfg *config.Config, summaryCache *cache.Cache) *Handler {
	return &Handler{
		svc:   NewService(NewRepository(db), cfg),
		cache: summaryCache,
	}
}

// GetSummary godoc
// @Summary      Dashboard summary
// @Description  Composite tenant dashboard: active visits, capacity, expiring memberships, revenue, classes today.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        orgId       query  string  true   "Organization UUID"
// @Param        locationId  query  string  false  "Location UUID, or null"
// @Param        range       query  string  false  "7d, 14d or 30d (default 7d)"
// @Param        from        query  string  false  "Explicit range start (RFC3339)"
// @Param        to          query  string  false  "Explicit range end (RFC3339)"
// @Success      200  {object}  Summary
// @Failure      403  {object}  api.ErrorResponse
// @Failure      422  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /dashboard/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	var q DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.Respond(c, api.NewError(api.CodeValidation, "invalid query parameters", ""))
		return
	}

	if err := ValidateDashboardQuery(&q); err != nil {
		api.Respond(c, err)
		return
	}

	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := ValidateTenantAccess(companyID, q.OrgID); err != nil {
		api.Respond(c, err)
		return
	}

	rng, err := ResolveDateRange(q.From, q.To, q.Range)
	if err != nil {
		api.Respond(c, err)
		return
	}

	key := summaryCacheKey(q.OrgID, q.LocationID, rng)
	if h.cache != nil {
		var cached Summary
		hit, err := h.cache.GetJSON(c.Request.Context(), key, &cached)
		if err != nil {
			logger.WithError(err).Debug("summary cache lookup failed")
		}
		metrics.RecordCacheLookup(hit)
		if hit {
			c.JSON(http.StatusOK, &cached)
			return
		}
	}

	summary, err := h.svc.GetSummary(c.Request.Context(), companyID, q.LocationID, rng)
	if err != nil {
		api.Respond(c, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(c.Request.Context(), key, summary); err != nil {
			logger.WithError(err).Debug("summary cache store failed")
		}
	}

	c.JSON(http.StatusOK, summary)
}

// GetActivity godoc
// @Summary      Activity feed
// @Description  Recent check-in/check-out events, most recent first.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        orgId       query  string  true   "Organization UUID"
// @Param        locationId  query  string  false  "Location UUID, or null"
// @Param        since       query  string  false  "Only events at or after this time (RFC3339)"
// @Param        limit       query  string  false  "Max events, 1-100 (default 25)"
// @Success      200  {array}   ActivityEvent
// @Failure      403  {object}  api.ErrorResponse
// @Failure      422  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /dashboard/activity [get]
func (h *Handler) GetActivity(c *gin.Context) {
	var q ActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.Respond(c, api.NewError(api.CodeValidation, "invalid query parameters", ""))
		return
	}

	if err := ValidateActivityQuery(&q); err != nil {
		api.Respond(c, err)
		return
	}

	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := ValidateTenantAccess(companyID, q.OrgID); err != nil {
		api.Respond(c, err)
		return
	}

	events, err := h.svc.GetActivity(
		c.Request.Context(),
		companyID,
		q.LocationID,
		q.SinceValue(activitySinceFallback),
		q.LimitValue(),
	)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func summaryCacheKey(orgID string, locationID *string, rng DateRange) string {
	loc := "all"
	if locationID != nil {
		loc = *locationID
	}
	return fmt.Sprintf("summary:%s:%s:%d:%d", orgID, loc, rng.From.Unix(), rng.To.Unix())
}
