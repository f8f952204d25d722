package mocks

import (
	"context"

	"blvgames/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockNotificationService is a mock type for the NotificationService type
type MockNotificationService struct {
	mock.Mock
}

type MockNotificationService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationService) EXPECT() *MockNotificationService_Expecter {
	return &MockNotificationService_Expecter{mock: &_m.Mock}
}

// Multicast provides a mock function with given fields: ctx, tokens, msg
func (_m *MockNotificationService) Multicast(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	ret := _m.Called(ctx, tokens, msg)

	if len(ret) == 0 {
		panic("no return value specified for Multicast")
	}

	if rf, ok := ret.Get(0).(func(context.Context, []string, service.PushMessage) (*service.PushReport, error)); ok {
		return rf(ctx, tokens, msg)
	}

	var r0 *service.PushReport
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.PushReport)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockNotificationService_Multicast_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Multicast'
type MockNotificationService_Multicast_Call struct {
	*mock.Call
}

// Multicast is a helper method to define mock.On call
//   - ctx context.Context
//   - tokens []string
//   - msg service.PushMessage
func (_e *MockNotificationService_Expecter) Multicast(ctx interface{}, tokens interface{}, msg interface{}) *MockNotificationService_Multicast_Call {
	return &MockNotificationService_Multicast_Call{Call: _e.mock.On("Multicast", ctx, tokens, msg)}
}

func (_c *MockNotificationService_Multicast_Call) Run(run func(ctx context.Context, tokens []string, msg service.PushMessage)) *MockNotificationService_Multicast_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string), args[2].(service.PushMessage))
	})
	return _c
}

func (_c *MockNotificationService_Multicast_Call) Return(_a0 *service.PushReport, _a1 error) *MockNotificationService_Multicast_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockNotificationService_Multicast_Call) RunAndReturn(run func(context.Context, []string, service.PushMessage) (*service.PushReport, error)) *MockNotificationService_Multicast_Call {
	_c.Call.Return(run)
	return _c
}

// Send provides a mock function with given fields: ctx, token, msg
func (_m *MockNotificationService) Send(ctx context.Context, token string, msg service.PushMessage) error {
	ret := _m.Called(ctx, token, msg)

	if len(ret) == 0 {
		panic("no return value specified for Send")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, service.PushMessage) error); ok {
		r0 = rf(ctx, token, msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockNotificationService_Send_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Send'
type MockNotificationService_Send_Call struct {
	*mock.Call
}

// Send is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
//   - msg service.PushMessage
func (_e *MockNotificationService_Expecter) Send(ctx interface{}, token interface{}, msg interface{}) *MockNotificationService_Send_Call {
	return &MockNotificationService_Send_Call{Call: _e.mock.On("Send", ctx, token, msg)}
}

func (_c *MockNotificationService_Send_Call) Run(run func(ctx context.Context, token string, msg service.PushMessage)) *MockNotificationService_Send_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(service.PushMessage))
	})
	return _c
}

func (_c *MockNotificationService_Send_Call) Return(_a0 error) *MockNotificationService_Send_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockNotificationService_Send_Call) RunAndReturn(run func(context.Context, string, service.PushMessage) error) *MockNotificationService_Send_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockNotificationService creates a new instance of MockNotificationService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockNotificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationService {
	m := &MockNotificationService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
