package membership

import (
	"net/http"

	"gymdash/internal/api"
	"gymdash/internal/auth"
	"gymdash/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

var validate = validator.New()

type expiringQuery struct {
	OrgID  string `form:"orgId" validate:"required,uuid_rfc4122"`
	Window string `form:"window" validate:"omitempty,oneof=7d 14d 30d"`
}

type Handler struct {
	svc Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{svc: NewService(NewRepository(db))}
}

// Expiring godoc
// @Summary      Expiring memberships
// @Description  ACTIVE memberships expiring within the window, soonest first.
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        orgId   query  string  true   "Organization UUID"
// @Param        window  query  string  false  "7d, 14d or 30d (default 7d)"
// @Success      200  {object}  ExpiringResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      422  {object}  api.ErrorResponse
// @Router       /memberships/expiring [get]
func (h *Handler) Expiring(c *gin.Context) {
	var q expiringQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.Respond(c, api.NewError(api.CodeValidation, "invalid query parameters", ""))
		return
	}

	if err := validate.Struct(&q); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			if verrs[0].Field() == "OrgID" {
				api.Respond(c, api.NewError(api.CodeInvalidOrgID, "orgId must be a valid UUID", "orgId"))
				return
			}
			api.Respond(c, api.NewError(api.CodeInvalidRange, "window must be one of 7d, 14d, 30d", "window"))
			return
		}
		api.Respond(c, api.NewError(api.CodeValidation, "invalid query parameters", ""))
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

	resp, err := h.svc.Expiring(c.Request.Context(), companyID, q.Window)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
