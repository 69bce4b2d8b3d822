package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListExpiring(ctx context.Context, companyID string, before time.Time) ([]Membership, error) {
	args := m.Called(ctx, companyID, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Membership), args.Error(1)
}

func TestExpiring(t *testing.T) {
	now := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	old := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = old })

	t.Run("window horizon applied", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		memberships := []Membership{
			{ID: "m1", MemberName: "Dana", Status: StatusActive, ExpiresAt: now.AddDate(0, 0, 2)},
			{ID: "m2", MemberName: "Robin", Status: StatusActive, ExpiresAt: now.AddDate(0, 0, 10)},
		}
		repo.On("ListExpiring", mock.Anything, "c1", now.AddDate(0, 0, 14)).Return(memberships, nil)

		resp, err := svc.Expiring(context.Background(), "c1", "14d")
		require.NoError(t, err)
		assert.Equal(t, "14d", resp.Window)
		assert.Equal(t, 2, resp.Count)
		repo.AssertExpectations(t)
	})

	t.Run("unknown window falls back to 7d", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("ListExpiring", mock.Anything, "c1", now.AddDate(0, 0, 7)).Return([]Membership{}, nil)

		resp, err := svc.Expiring(context.Background(), "c1", "90d")
		require.NoError(t, err)
		assert.Equal(t, "7d", resp.Window)
		assert.Zero(t, resp.Count)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("ListExpiring", mock.Anything, "c1", mock.Anything).Return(nil, errors.New("down"))

		_, err := svc.Expiring(context.Background(), "c1", "7d")
		assert.Error(t, err)
	})
}
