package mocks

import (
	"context"

	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock type for the UserUsecase type
type MockUserUsecase struct {
	mock.Mock
}

type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RegisterInput) (*usecase.RegisterOutput, error)); ok {
		return rf(ctx, input)
	}

	var r0 *usecase.RegisterOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.RegisterOutput)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockUserUsecase_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockUserUsecase_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.RegisterInput
func (_e *MockUserUsecase_Expecter) Register(ctx interface{}, input interface{}) *MockUserUsecase_Register_Call {
	return &MockUserUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockUserUsecase_Register_Call) Run(run func(ctx context.Context, input *usecase.RegisterInput)) *MockUserUsecase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.RegisterInput))
	})
	return _c
}

func (_c *MockUserUsecase_Register_Call) Return(_a0 *usecase.RegisterOutput, _a1 error) *MockUserUsecase_Register_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_Register_Call) RunAndReturn(run func(context.Context, *usecase.RegisterInput) (*usecase.RegisterOutput, error)) *MockUserUsecase_Register_Call {
	_c.Call.Return(run)
	return _c
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)); ok {
		return rf(ctx, input)
	}

	var r0 *usecase.LoginOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.LoginOutput)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockUserUsecase_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockUserUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.LoginInput
func (_e *MockUserUsecase_Expecter) Login(ctx interface{}, input interface{}) *MockUserUsecase_Login_Call {
	return &MockUserUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockUserUsecase_Login_Call) Run(run func(ctx context.Context, input *usecase.LoginInput)) *MockUserUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.LoginInput))
	})
	return _c
}

func (_c *MockUserUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockUserUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_Login_Call) RunAndReturn(run func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)) *MockUserUsecase_Login_Call {
	_c.Call.Return(run)
	return _c
}

// RefreshToken provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for RefreshToken")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)); ok {
		return rf(ctx, input)
	}

	var r0 *usecase.RefreshTokenOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.RefreshTokenOutput)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockUserUsecase_RefreshToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RefreshToken'
type MockUserUsecase_RefreshToken_Call struct {
	*mock.Call
}

// RefreshToken is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.RefreshTokenInput
func (_e *MockUserUsecase_Expecter) RefreshToken(ctx interface{}, input interface{}) *MockUserUsecase_RefreshToken_Call {
	return &MockUserUsecase_RefreshToken_Call{Call: _e.mock.On("RefreshToken", ctx, input)}
}

func (_c *MockUserUsecase_RefreshToken_Call) Run(run func(ctx context.Context, input *usecase.RefreshTokenInput)) *MockUserUsecase_RefreshToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.RefreshTokenInput))
	})
	return _c
}

func (_c *MockUserUsecase_RefreshToken_Call) Return(_a0 *usecase.RefreshTokenOutput, _a1 error) *MockUserUsecase_RefreshToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_RefreshToken_Call) RunAndReturn(run func(context.Context, *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error)) *MockUserUsecase_RefreshToken_Call {
	_c.Call.Return(run)
	return _c
}

// Logout provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Logout")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LogoutInput) error); ok {
		r0 = rf(ctx, input)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUserUsecase_Logout_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Logout'
type MockUserUsecase_Logout_Call struct {
	*mock.Call
}

// Logout is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.LogoutInput
func (_e *MockUserUsecase_Expecter) Logout(ctx interface{}, input interface{}) *MockUserUsecase_Logout_Call {
	return &MockUserUsecase_Logout_Call{Call: _e.mock.On("Logout", ctx, input)}
}

func (_c *MockUserUsecase_Logout_Call) Run(run func(ctx context.Context, input *usecase.LogoutInput)) *MockUserUsecase_Logout_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.LogoutInput))
	})
	return _c
}

func (_c *MockUserUsecase_Logout_Call) Return(_a0 error) *MockUserUsecase_Logout_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUserUsecase_Logout_Call) RunAndReturn(run func(context.Context, *usecase.LogoutInput) error) *MockUserUsecase_Logout_Call {
	_c.Call.Return(run)
	return _c
}

// LogoutAllDevices provides a mock function with given fields: ctx, userID
func (_m *MockUserUsecase) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for LogoutAllDevices")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUserUsecase_LogoutAllDevices_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LogoutAllDevices'
type MockUserUsecase_LogoutAllDevices_Call struct {
	*mock.Call
}

// LogoutAllDevices is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockUserUsecase_Expecter) LogoutAllDevices(ctx interface{}, userID interface{}) *MockUserUsecase_LogoutAllDevices_Call {
	return &MockUserUsecase_LogoutAllDevices_Call{Call: _e.mock.On("LogoutAllDevices", ctx, userID)}
}

func (_c *MockUserUsecase_LogoutAllDevices_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockUserUsecase_LogoutAllDevices_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockUserUsecase_LogoutAllDevices_Call) Return(_a0 error) *MockUserUsecase_LogoutAllDevices_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUserUsecase_LogoutAllDevices_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockUserUsecase_LogoutAllDevices_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUserUsecase creates a new instance of MockUserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
