package mocks

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock type for the EventPublisher type
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// PublishListingModerated provides a mock function with given fields: ctx, event
func (_m *MockEventPublisher) PublishListingModerated(ctx context.Context, event *entity.ListingModeratedEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for PublishListingModerated")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.ListingModeratedEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_PublishListingModerated_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PublishListingModerated'
type MockEventPublisher_PublishListingModerated_Call struct {
	*mock.Call
}

// PublishListingModerated is a helper method to define mock.On call
//   - ctx context.Context
//   - event *entity.ListingModeratedEvent
func (_e *MockEventPublisher_Expecter) PublishListingModerated(ctx interface{}, event interface{}) *MockEventPublisher_PublishListingModerated_Call {
	return &MockEventPublisher_PublishListingModerated_Call{Call: _e.mock.On("PublishListingModerated", ctx, event)}
}

func (_c *MockEventPublisher_PublishListingModerated_Call) Run(run func(ctx context.Context, event *entity.ListingModeratedEvent)) *MockEventPublisher_PublishListingModerated_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.ListingModeratedEvent))
	})
	return _c
}

func (_c *MockEventPublisher_PublishListingModerated_Call) Return(_a0 error) *MockEventPublisher_PublishListingModerated_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventPublisher_PublishListingModerated_Call) RunAndReturn(run func(context.Context, *entity.ListingModeratedEvent) error) *MockEventPublisher_PublishListingModerated_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with given fields
func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockEventPublisher_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockEventPublisher_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockEventPublisher_Expecter) Close() *MockEventPublisher_Close_Call {
	return &MockEventPublisher_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockEventPublisher_Close_Call) Run(run func()) *MockEventPublisher_Close_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockEventPublisher_Close_Call) Return(_a0 error) *MockEventPublisher_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockEventPublisher_Close_Call) RunAndReturn(run func() error) *MockEventPublisher_Close_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
