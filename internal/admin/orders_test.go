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

// MockOrdersAPI is a mock implementation of the OrdersAPI interface
type MockOrdersAPI struct {
	mock.Mock
}

func (m *MockOrdersAPI) ListOrders(ctx context.Context) ([]backend.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.Order), args.Error(1)
}

func (m *MockOrdersAPI) ListOrdersByStatus(ctx context.Context, status string) ([]backend.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.Order), args.Error(1)
}

func (m *MockOrdersAPI) UpdateOrderStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestOrders_List(t *testing.T) {
	all := []backend.Order{{ID: "o1", Status: "pending"}, {ID: "o2", Status: "shipped"}}

	t.Run("Empty filter fetches everything", func(t *testing.T) {
		api := new(MockOrdersAPI)
		api.On("ListOrders", mock.Anything).Return(all, nil).Once()

		orders, err := NewOrders(api).List(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("StatusAll fetches everything", func(t *testing.T) {
		api := new(MockOrdersAPI)
		api.On("ListOrders", mock.Anything).Return(all, nil).Once()

		_, err := NewOrders(api).List(context.Background(), StatusAll)
		require.NoError(t, err)
		api.AssertNotCalled(t, "ListOrdersByStatus", mock.Anything, mock.Anything)
	})

	t.Run("Known status uses the filter endpoint", func(t *testing.T) {
		api := new(MockOrdersAPI)
		api.On("ListOrdersByStatus", mock.Anything, "shipped").Return(all[1:], nil).Once()

		orders, err := NewOrders(api).List(context.Background(), "shipped")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "o2", orders[0].ID)
	})

	t.Run("Unknown status rejected locally", func(t *testing.T) {
		api := new(MockOrdersAPI)

		_, err := NewOrders(api).List(context.Background(), "teleported")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		api.AssertNotCalled(t, "ListOrdersByStatus", mock.Anything, mock.Anything)
	})
}

func TestOrders_UpdateStatus(t *testing.T) {
	t.Run("Updates then re-fetches", func(t *testing.T) {
		api := new(MockOrdersAPI)
		api.On("UpdateOrderStatus", mock.Anything, "o1", "shipped").Return(nil).Once()
		api.On("ListOrders", mock.Anything).Return([]backend.Order{{ID: "o1", Status: "shipped"}}, nil).Once()

		orders, err := NewOrders(api).UpdateStatus(context.Background(), "o1", "shipped")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "shipped", orders[0].Status)
		api.AssertExpectations(t)
	})

	t.Run("Unknown status rejected locally", func(t *testing.T) {
		api := new(MockOrdersAPI)

		_, err := NewOrders(api).UpdateStatus(context.Background(), "o1", "lost")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		api.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Backend failure propagates", func(t *testing.T) {
		api := new(MockOrdersAPI)
		api.On("UpdateOrderStatus", mock.Anything, "o1", "shipped").Return(errors.New("backend down")).Once()

		_, err := NewOrders(api).UpdateStatus(context.Background(), "o1", "shipped")
		assert.Error(t, err)
		api.AssertNotCalled(t, "ListOrders", mock.Anything)
	})
}

func TestValidStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("all"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Pending"))
}
