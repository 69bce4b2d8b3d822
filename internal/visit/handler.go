package visit

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

// CheckIn godoc
// @Summary      Check a member in
// @Description  Opens a visit for a membership. A membership can have at most one open visit.
// @Tags         visits
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckInRequest  true  "Check-in"
// @Success      201      {object}  Visit
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  map[string]string
// @Router       /visits/check-in [post]
func (h *Handler) CheckIn(c *gin.Context) {
	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "membershipId must be a valid UUID"})
		return
	}

	v, err := h.svc.CheckIn(c.Request.Context(), companyID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMembershipNotFound):
			api.Respond(c, api.NotFound("Membership not found"))
		case errors.Is(err, ErrAlreadyCheckedIn):
			c.JSON(http.StatusConflict, gin.H{"error": "Membership already has an open visit"})
		default:
			api.Respond(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, v)
}

// CheckOut godoc
// @Summary      Check a member out
// @Description  Closes an open visit.
// @Tags         visits
// @Security     BearerAuth
// @Produce      json
// @Param        visitID  path      string  true  "Visit UUID"
// @Success      200      {object}  Visit
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  map[string]string
// @Router       /visits/{visitID}/check-out [post]
func (h *Handler) CheckOut(c *gin.Context) {
	companyID, ok := auth.GetCompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	visitID := c.Param("visitID")
	if err := validate.Var(visitID, "uuid_rfc4122"); err != nil {
		api.Respond(c, api.NewError(api.CodeValidation, "visitID must be a valid UUID", "visitID"))
		return
	}

	v, err := h.svc.CheckOut(c.Request.Context(), companyID, visitID)
	if err != nil {
		switch {
		case errors.Is(err, ErrVisitNotFound):
			api.Respond(c, api.NotFound("Visit not found"))
		case errors.Is(err, ErrAlreadyCheckedOut):
			c.JSON(http.StatusConflict, gin.H{"error": "Visit already checked out"})
		default:
			api.Respond(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, v)
}

// RecordAttendance godoc
// @Summary      Record class attendance for a visit
// @Description  Not available yet. The endpoint validates its input and reports NOT_IMPLEMENTED.
// @Tags         visits
// @Security     BearerAuth
// @Produce      json
// @Param        visitID  path      string  true  "Visit UUID"
// @Failure      501      {object}  api.ErrorResponse
// @Router       /visits/{visitID}/attendance [post]
func (h *Handler) RecordAttendance(c *gin.Context) {
	if _, ok := auth.GetCompanyID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	visitID := c.Param("visitID")
	if err := validate.Var(visitID, "uuid_rfc4122"); err != nil {
		api.Respond(c, api.NewError(api.CodeValidation, "visitID must be a valid UUID", "visitID"))
		return
	}

	api.Respond(c, api.NotImplemented("Attendance recording is not available yet"))
}
