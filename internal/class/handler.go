package class

import (
	"errors"
	"net/http"
	"time"

	"gymdash/internal/api"
	"gymdash/internal/auth"
	"gymdash/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

var validate = validator.New()

type Handler struct {
	svc Service
}

func NewHandler(db *sqlx.DB, cfg *config.Config) *Handler {
	return &Handler{svc: NewService(NewRepository(db), cfg)}
}

// ListToday godoc
// @Summary      Today's classes
// @Description  Classes starting today with booked counts and a derived status.
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        locationId  query  string  false  "Location UUID, or null"
// @Param        date        query  string  false  "Day to list (YYYY-MM-DD, default today)"
// @Success      200  {object}  TodayResponse
// @Failure      422  {object}  api.ErrorResponse
// @Router       /classes/today [get]
func (h *Handler) ListToday(c *gin.Context) {
	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var locationID *string
	if raw := c.Query("locationId"); raw != "" && raw != "null" {
		if err := validate.Var(raw, "uuid_rfc4122"); err != nil {
			api.Respond(c, api.NewError(api.CodeInvalidLocationID, "locationId must be a valid UUID", "locationId"))
			return
		}
		locationID = &raw
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			api.Respond(c, api.NewError(api.CodeValidation, "date must be formatted YYYY-MM-DD", "date"))
			return
		}
		date = &parsed
	}

	resp, err := h.svc.ListToday(c.Request.Context(), companyID, locationID, date)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateClass godoc
// @Summary      Create class
// @Description  Schedules a class at one of the company's locations. Admin only.
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateClassRequest  true  "Class"
// @Success      201      {object}  Class
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.svc.CreateClass(c.Request.Context(), companyID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrLocationNotFound):
			api.Respond(c, api.NotFound("Location not found"))
		case errors.Is(err, ErrInvalidClass):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class definition"})
		default:
			api.Respond(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}
