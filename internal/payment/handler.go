package payment

import (
	"net/http"

	"gymdash/internal/api"
	"gymdash/internal/auth"
	"gymdash/internal/config"
	"gymdash/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

var validate = validator.New()

type trendsQuery struct {
	OrgID      string  `form:"orgId" validate:"required,uuid_rfc4122"`
	LocationID *string `form:"locationId" validate:"omitempty,uuid_rfc4122"`
	Period     string  `form:"period" validate:"omitempty,oneof=7d 14d 30d"`
}

type Handler struct {
	svc Service
}

func NewHandler(db *sqlx.DB, cfg *config.Config) *Handler {
	return &Handler{svc: NewService(NewRepository(db), cfg)}
}

// Trends godoc
// @Summary      Revenue trends
// @Description  Daily revenue and transaction counts over a trailing period.
// @Tags         revenue
// @Security     BearerAuth
// @Produce      json
// @Param        orgId       query  string  true   "Organization UUID"
// @Param        period      query  string  false  "7d, 14d or 30d (default 7d)"
// @Param        locationId  query  string  false  "Location UUID, or null"
// @Success      200  {object}  TrendsResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      422  {object}  api.ErrorResponse
// @Router       /revenue/trends [get]
func (h *Handler) Trends(c *gin.Context) {
	var q trendsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.Respond(c, api.NewError(api.CodeValidation, "invalid query parameters", ""))
		return
	}

	if q.LocationID != nil && *q.LocationID == "null" {
		q.LocationID = nil
	}

	if err := validate.Struct(&q); err != nil {
		api.Respond(c, mapTrendsError(err))
		return
	}

	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := dashboard.ValidateTenantAccess(companyID, q.OrgID); err != nil {
		api.Respond(c, err)
		return
	}

	resp, err := h.svc.Trends(c.Request.Context(), companyID, q.LocationID, q.Period)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func mapTrendsError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return api.NewError(api.CodeValidation, "invalid query parameters", "")
	}

	// Same first-matching-field precedence as the dashboard validator.
	for _, field := range []string{"OrgID", "LocationID", "Period"} {
		for _, fe := range verrs {
			if fe.Field() != field {
				continue
			}
			switch field {
			case "OrgID":
				return api.NewError(api.CodeInvalidOrgID, "orgId must be a valid UUID", "orgId")
			case "LocationID":
				return api.NewError(api.CodeInvalidLocationID, "locationId must be a valid UUID", "locationId")
			case "Period":
				return api.NewError(api.CodeInvalidRange, "period must be one of 7d, 14d, 30d", "period")
			}
		}
	}
	return api.NewError(api.CodeValidation, "invalid query parameters", verrs[0].Field())
}
