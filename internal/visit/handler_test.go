package visit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testCompanyID    = "489ff883-138b-44a1-88db-83927b596e35"
	testMembershipID = "a2f5c3de-9d70-4f7e-b1f2-0c2f34f1a9b1"
	testVisitID      = "4b2d9c11-6e0a-4a57-9d7e-58c9f4b2a310"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CheckIn(ctx context.Context, companyID string, req CheckInRequest) (*Visit, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Visit), args.Error(1)
}

func (m *MockService) CheckOut(ctx context.Context, companyID, visitID string) (*Visit, error) {
	args := m.Called(ctx, companyID, visitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Visit), args.Error(1)
}

func newTestRouter(h *Handler, companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if companyID != "" {
			c.Set("company_id", companyID)
		}
	})
	r.POST("/visits/check-in", h.CheckIn)
	r.POST("/visits/:visitID/check-out", h.CheckOut)
	r.POST("/visits/:visitID/attendance", h.RecordAttendance)
	return r
}

func TestCheckInHandler(t *testing.T) {
	svc := new(MockService)
	h := &Handler{svc: svc}
	r := newTestRouter(h, testCompanyID)

	svc.On("CheckIn", mock.Anything, testCompanyID, CheckInRequest{MembershipID: testMembershipID}).
		Return(&Visit{ID: testVisitID, MembershipID: testMembershipID, CheckedInAt: time.Now()}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/visits/check-in",
		strings.NewReader(`{"membershipId":"`+testMembershipID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), testVisitID)
	svc.AssertExpectations(t)
}

func TestCheckInHandlerRejectsBadMembershipID(t *testing.T) {
	h := &Handler{svc: new(MockService)}
	r := newTestRouter(h, testCompanyID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/visits/check-in",
		strings.NewReader(`{"membershipId":"not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckInHandlerConflict(t *testing.T) {
	svc := new(MockService)
	h := &Handler{svc: svc}
	r := newTestRouter(h, testCompanyID)

	svc.On("CheckIn", mock.Anything, testCompanyID, mock.Anything).
		Return(nil, ErrAlreadyCheckedIn)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/visits/check-in",
		strings.NewReader(`{"membershipId":"`+testMembershipID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckOutHandlerUnknownVisit(t *testing.T) {
	svc := new(MockService)
	h := &Handler{svc: svc}
	r := newTestRouter(h, testCompanyID)

	svc.On("CheckOut", mock.Anything, testCompanyID, testVisitID).
		Return(nil, ErrVisitNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/visits/"+testVisitID+"/check-out", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestCheckOutHandlerRejectsBadVisitID(t *testing.T) {
	h := &Handler{svc: new(MockService)}
	r := newTestRouter(h, testCompanyID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/visits/nope/check-out", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestAttendanceNotImplemented(t *testing.T) {
	h := &Handler{svc: new(MockService)}
	r := newTestRouter(h, testCompanyID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/visits/"+testVisitID+"/attendance", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_IMPLEMENTED")
}

func TestCheckInUnauthenticated(t *testing.T) {
	h := &Handler{svc: new(MockService)}
	r := newTestRouter(h, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/visits/check-in",
		strings.NewReader(`{"membershipId":"`+testMembershipID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
