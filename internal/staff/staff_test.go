package staff

import (
	"context"
	"testing"

	"food-court/internal/model"
	"food-court/internal/notify"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAPI is a mock implementation of API.
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockAPI) SetItemAvailability(ctx context.Context, itemID int64, available bool) error {
	args := m.Called(ctx, itemID, available)
	return args.Error(0)
}

// MockDispatcher is a mock implementation of notify.Dispatcher.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, event notify.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func pendingOrder() model.Order {
	return model.Order{
		ID:        101,
		UserName:  "Asha",
		UserToken: "device-token-1",
		Status:    model.StatusPending,
	}
}

func TestService_Decide_Accept(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAPI)
	mockDispatcher := new(MockDispatcher)
	service := NewService(mockAPI, mockDispatcher, zerolog.Nop())

	mockAPI.On("UpdateOrderStatus", ctx, int64(101), model.StatusAccepted).Return(nil)
	mockDispatcher.On("Dispatch", ctx, mock.MatchedBy(func(e notify.Event) bool {
		return e.Kind == notify.KindStatusChanged &&
			e.OrderID == 101 &&
			e.Token == "device-token-1" &&
			e.Body == "Your order has been accepted!"
	})).Return(nil)

	err := service.Decide(ctx, pendingOrder(), model.StatusAccepted)

	require.NoError(t, err)
	mockAPI.AssertExpectations(t)
	mockDispatcher.AssertExpectations(t)
}

func TestService_Decide_InvalidStatus(t *testing.T) {
	tests := []struct {
		name   string
		status model.OrderStatus
	}{
		{name: "Pending is not a decision", status: model.StatusPending},
		{name: "Unknown status", status: model.OrderStatus("cooked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := new(MockAPI)
			service := NewService(mockAPI, notify.NopDispatcher{}, zerolog.Nop())

			err := service.Decide(context.Background(), pendingOrder(), tt.status)

			assert.ErrorIs(t, err, model.ErrInvalidStatus)
			mockAPI.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Decide_APIFailure(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAPI)
	mockDispatcher := new(MockDispatcher)
	service := NewService(mockAPI, mockDispatcher, zerolog.Nop())

	mockAPI.On("UpdateOrderStatus", ctx, int64(101), model.StatusRejected).
		Return(model.ErrServiceUnavailable)

	err := service.Decide(ctx, pendingOrder(), model.StatusRejected)

	assert.ErrorIs(t, err, model.ErrServiceUnavailable)
	mockDispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestService_Decide_NotificationFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAPI)
	mockDispatcher := new(MockDispatcher)
	service := NewService(mockAPI, mockDispatcher, zerolog.Nop())

	mockAPI.On("UpdateOrderStatus", ctx, int64(101), model.StatusAccepted).Return(nil)
	mockDispatcher.On("Dispatch", ctx, mock.AnythingOfType("notify.Event")).
		Return(model.ErrServiceUnavailable)

	assert.NoError(t, service.Decide(ctx, pendingOrder(), model.StatusAccepted))
}

func TestService_Decide_NoTokenSkipsNotification(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAPI)
	mockDispatcher := new(MockDispatcher)
	service := NewService(mockAPI, mockDispatcher, zerolog.Nop())

	order := pendingOrder()
	order.UserToken = ""
	mockAPI.On("UpdateOrderStatus", ctx, int64(101), model.StatusAccepted).Return(nil)

	require.NoError(t, service.Decide(ctx, order, model.StatusAccepted))
	mockDispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestService_SetAvailability(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAPI)
	service := NewService(mockAPI, notify.NopDispatcher{}, zerolog.Nop())

	mockAPI.On("SetItemAvailability", ctx, int64(7), false).Return(nil)

	require.NoError(t, service.SetAvailability(ctx, 7, false))
	mockAPI.AssertExpectations(t)
}

func TestService_SetAvailability_Failure(t *testing.T) {
	ctx := context.Background()
	mockAPI := new(MockAPI)
	service := NewService(mockAPI, notify.NopDispatcher{}, zerolog.Nop())

	mockAPI.On("SetItemAvailability", ctx, int64(7), true).
		Return(model.ErrServiceUnavailable)

	err := service.SetAvailability(ctx, 7, true)

	assert.ErrorIs(t, err, model.ErrServiceUnavailable)
}
