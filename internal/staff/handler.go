package staff

import (
	"errors"
	"net/http"
	"time"

	"gymdash/internal/api"
	"gymdash/internal/auth"
	"gymdash/internal/config"
	"gymdash/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

var validate = validator.New()

type coverageQuery struct {
	OrgID      string  `form:"orgId" validate:"required,uuid_rfc4122"`
	LocationID *string `form:"locationId" validate:"omitempty,uuid_rfc4122"`
	Date       string  `form:"date"`
}

type Handler struct {
	svc Service
}

func NewHandler(db *sqlx.DB, cfg *config.Config) *Handler {
	return &Handler{svc: NewService(NewRepository(db), cfg)}
}

// Coverage godoc
// @Summary      Staffing coverage gaps
// @Description  Uncovered stretches of the business day per required role.
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Param        orgId       query  string  true   "Organization UUID"
// @Param        locationId  query  string  false  "Location UUID, or null"
// @Param        date        query  string  false  "Day to inspect (YYYY-MM-DD, default today)"
// @Success      200  {object}  CoverageResponse
// @Failure      403  {object}  api.ErrorResponse
// @Failure      422  {object}  api.ErrorResponse
// @Router       /staff/coverage [get]
func (h *Handler) Coverage(c *gin.Context) {
	var q coverageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.Respond(c, api.NewError(api.CodeValidation, "invalid query parameters", ""))
		return
	}

	if q.LocationID != nil && *q.LocationID == "null" {
		q.LocationID = nil
	}

	if err := validate.Struct(&q); err != nil {
		api.Respond(c, mapCoverageError(err))
		return
	}

	var date *time.Time
	if q.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q.Date, time.Local)
		if err != nil {
			api.Respond(c, api.NewError(api.CodeValidation, "date must be formatted YYYY-MM-DD", "date"))
			return
		}
		date = &parsed
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

	resp, err := h.svc.Coverage(c.Request.Context(), companyID, q.LocationID, date)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateShift godoc
// @Summary      Create staff shift
// @Description  Schedules a shift at one of the company's locations. Admin only.
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateShiftRequest  true  "Shift"
// @Success      201      {object}  Shift
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/staff/shifts [post]
func (h *Handler) CreateShift(c *gin.Context) {
	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.svc.CreateShift(c.Request.Context(), companyID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrLocationNotFound):
			api.Respond(c, api.NotFound("Location not found"))
		case errors.Is(err, ErrInvalidShift):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift definition"})
		default:
			api.Respond(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

func mapCoverageError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return api.NewError(api.CodeValidation, "invalid query parameters", "")
	}

	for _, field := range []string{"OrgID", "LocationID"} {
		for _, fe := range verrs {
			if fe.Field() != field {
				continue
			}
			if field == "OrgID" {
				return api.NewError(api.CodeInvalidOrgID, "orgId must be a valid UUID", "orgId")
			}
			return api.NewError(api.CodeInvalidLocationID, "locationId must be a valid UUID", "locationId")
		}
	}
	return api.NewError(api.CodeValidation, "invalid query parameters", verrs[0].Field())
}
