package mocks

import (
	"context"

	"blvgames/internal/domain/entity"
	"blvgames/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockNotificationUsecase is a mock type for the NotificationUsecase type
type MockNotificationUsecase struct {
	mock.Mock
}

type MockNotificationUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationUsecase) EXPECT() *MockNotificationUsecase_Expecter {
	return &MockNotificationUsecase_Expecter{mock: &_m.Mock}
}

// NotifyListingModerated provides a mock function with given fields: ctx, event
func (_m *MockNotificationUsecase) NotifyListingModerated(ctx context.Context, event *entity.ListingModeratedEvent) (*usecase.NotifyResult, error) {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for NotifyListingModerated")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.ListingModeratedEvent) (*usecase.NotifyResult, error)); ok {
		return rf(ctx, event)
	}

	var r0 *usecase.NotifyResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.NotifyResult)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockNotificationUsecase_NotifyListingModerated_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NotifyListingModerated'
type MockNotificationUsecase_NotifyListingModerated_Call struct {
	*mock.Call
}

// NotifyListingModerated is a helper method to define mock.On call
//   - ctx context.Context
//   - event *entity.ListingModeratedEvent
func (_e *MockNotificationUsecase_Expecter) NotifyListingModerated(ctx interface{}, event interface{}) *MockNotificationUsecase_NotifyListingModerated_Call {
	return &MockNotificationUsecase_NotifyListingModerated_Call{Call: _e.mock.On("NotifyListingModerated", ctx, event)}
}

func (_c *MockNotificationUsecase_NotifyListingModerated_Call) Run(run func(ctx context.Context, event *entity.ListingModeratedEvent)) *MockNotificationUsecase_NotifyListingModerated_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.ListingModeratedEvent))
	})
	return _c
}

func (_c *MockNotificationUsecase_NotifyListingModerated_Call) Return(_a0 *usecase.NotifyResult, _a1 error) *MockNotificationUsecase_NotifyListingModerated_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockNotificationUsecase_NotifyListingModerated_Call) RunAndReturn(run func(context.Context, *entity.ListingModeratedEvent) (*usecase.NotifyResult, error)) *MockNotificationUsecase_NotifyListingModerated_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockNotificationUsecase creates a new instance of MockNotificationUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockNotificationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationUsecase {
	m := &MockNotificationUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
