package location

import (
	"errors"
	"net/http"

	"gymdash/internal/api"
	"gymdash/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

var validate = validator.New()

type Handler struct {
	svc Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{svc: NewService(NewRepository(db))}
}

// List godoc
// @Summary      Company locations
// @Tags         locations
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Location
// @Router       /locations [get]
func (h *Handler) List(c *gin.Context) {
	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	locations, err := h.svc.List(c.Request.Context(), companyID)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// Get godoc
// @Summary      Location by ID
// @Tags         locations
// @Security     BearerAuth
// @Produce      json
// @Param        locationID  path      string  true  "Location UUID"
// @Success      200         {object}  Location
// @Failure      404         {object}  api.ErrorResponse
// @Router       /locations/{locationID} [get]
func (h *Handler) Get(c *gin.Context) {
	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	locationID := c.Param("locationID")
	if err := validate.Var(locationID, "uuid_rfc4122"); err != nil {
		api.Respond(c, api.NewError(api.CodeInvalidLocationID, "locationId must be a valid UUID", "locationId"))
		return
	}

	l, err := h.svc.Get(c.Request.Context(), companyID, locationID)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			api.Respond(c, api.NotFound("Location not found"))
			return
		}
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, l)
}

// Create godoc
// @Summary      Create location
// @Description  Admin only.
// @Tags         locations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateLocationRequest  true  "Location"
// @Success      201      {object}  Location
// @Failure      400      {object}  map[string]string
// @Router       /admin/locations [post]
func (h *Handler) Create(c *gin.Context) {
	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), companyID, req)
	if err != nil {
		api.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
