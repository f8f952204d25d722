package mocks

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAuthRepository is a mock type for the AuthRepository type
type MockAuthRepository struct {
	mock.Mock
}

type MockAuthRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthRepository) EXPECT() *MockAuthRepository_Expecter {
	return &MockAuthRepository_Expecter{mock: &_m.Mock}
}

// CreateAuthentication provides a mock function with given fields: ctx, auth
func (_m *MockAuthRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	ret := _m.Called(ctx, auth)

	if len(ret) == 0 {
		panic("no return value specified for CreateAuthentication")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Authentication) error); ok {
		r0 = rf(ctx, auth)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockAuthRepository_CreateAuthentication_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateAuthentication'
type MockAuthRepository_CreateAuthentication_Call struct {
	*mock.Call
}

// CreateAuthentication is a helper method to define mock.On call
//   - ctx context.Context
//   - auth *entity.Authentication
func (_e *MockAuthRepository_Expecter) CreateAuthentication(ctx interface{}, auth interface{}) *MockAuthRepository_CreateAuthentication_Call {
	return &MockAuthRepository_CreateAuthentication_Call{Call: _e.mock.On("CreateAuthentication", ctx, auth)}
}

func (_c *MockAuthRepository_CreateAuthentication_Call) Run(run func(ctx context.Context, auth *entity.Authentication)) *MockAuthRepository_CreateAuthentication_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Authentication))
	})
	return _c
}

func (_c *MockAuthRepository_CreateAuthentication_Call) Return(_a0 error) *MockAuthRepository_CreateAuthentication_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockAuthRepository_CreateAuthentication_Call) RunAndReturn(run func(context.Context, *entity.Authentication) error) *MockAuthRepository_CreateAuthentication_Call {
	_c.Call.Return(run)
	return _c
}

// FindAuthentication provides a mock function with given fields: ctx, provider, providerUserID
func (_m *MockAuthRepository) FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	ret := _m.Called(ctx, provider, providerUserID)

	if len(ret) == 0 {
		panic("no return value specified for FindAuthentication")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*entity.Authentication, error)); ok {
		return rf(ctx, provider, providerUserID)
	}

	var r0 *entity.Authentication
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Authentication)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockAuthRepository_FindAuthentication_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAuthentication'
type MockAuthRepository_FindAuthentication_Call struct {
	*mock.Call
}

// FindAuthentication is a helper method to define mock.On call
//   - ctx context.Context
//   - provider string
//   - providerUserID string
func (_e *MockAuthRepository_Expecter) FindAuthentication(ctx interface{}, provider interface{}, providerUserID interface{}) *MockAuthRepository_FindAuthentication_Call {
	return &MockAuthRepository_FindAuthentication_Call{Call: _e.mock.On("FindAuthentication", ctx, provider, providerUserID)}
}

func (_c *MockAuthRepository_FindAuthentication_Call) Run(run func(ctx context.Context, provider string, providerUserID string)) *MockAuthRepository_FindAuthentication_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockAuthRepository_FindAuthentication_Call) Return(_a0 *entity.Authentication, _a1 error) *MockAuthRepository_FindAuthentication_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthRepository_FindAuthentication_Call) RunAndReturn(run func(context.Context, string, string) (*entity.Authentication, error)) *MockAuthRepository_FindAuthentication_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAuthRepository creates a new instance of MockAuthRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthRepository {
	m := &MockAuthRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
