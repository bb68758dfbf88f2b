package admin

import (
	"context"
	"errors"
	"testing"

	"marocstar-shop/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockContactsAPI is a mock implementation of the ContactsAPI interface
type MockContactsAPI struct {
	mock.Mock
}

func (m *MockContactsAPI) ListContacts(ctx context.Context) ([]backend.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.ContactMessage), args.Error(1)
}

func (m *MockContactsAPI) ReplyContact(ctx context.Context, reply backend.ContactReply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func (m *MockContactsAPI) DeleteContact(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDashboardAPI is a mock implementation of the DashboardAPI interface
type MockDashboardAPI struct {
	mock.Mock
}

func (m *MockDashboardAPI) DashboardStats(ctx context.Context) (*backend.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Stats), args.Error(1)
}

func TestInbox_Reply(t *testing.T) {
	t.Run("Sends with the fixed subject", func(t *testing.T) {
		api := new(MockContactsAPI)
		api.On("ReplyContact", mock.Anything, backend.ContactReply{
			Email:   "omar@example.com",
			Subject: replySubject,
			Message: "Votre commande part demain.",
		}).Return(nil).Once()

		err := NewInbox(api).Reply(context.Background(), "omar@example.com", "Votre commande part demain.")
		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("Empty reply rejected locally", func(t *testing.T) {
		api := new(MockContactsAPI)

		err := NewInbox(api).Reply(context.Background(), "omar@example.com", "   ")
		assert.ErrorIs(t, err, ErrEmptyReply)
		api.AssertNotCalled(t, "ReplyContact", mock.Anything, mock.Anything)
	})
}

func TestInbox_Delete(t *testing.T) {
	t.Run("Deletes then re-fetches", func(t *testing.T) {
		api := new(MockContactsAPI)
		api.On("DeleteContact", mock.Anything, "c1").Return(nil).Once()
		api.On("ListContacts", mock.Anything).Return([]backend.ContactMessage{}, nil).Once()

		messages, err := NewInbox(api).Delete(context.Background(), "c1")
		require.NoError(t, err)
		assert.Empty(t, messages)
		api.AssertExpectations(t)
	})

	t.Run("Backend failure propagates", func(t *testing.T) {
		api := new(MockContactsAPI)
		api.On("DeleteContact", mock.Anything, "c1").Return(errors.New("backend down")).Once()

		_, err := NewInbox(api).Delete(context.Background(), "c1")
		assert.Error(t, err)
		api.AssertNotCalled(t, "ListContacts", mock.Anything)
	})
}

func TestDashboard_Stats(t *testing.T) {
	api := new(MockDashboardAPI)
	api.On("DashboardStats", mock.Anything).Return(&backend.Stats{
		TotalProducts: 12,
		TotalOrders:   30,
		TotalSales:    4250.5,
	}, nil).Once()

	stats, err := NewDashboard(api).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalProducts)
	assert.Equal(t, 4250.5, stats.TotalSales)
}
