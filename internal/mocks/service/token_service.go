package mocks

import (
	"time"

	"blvgames/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// GenerateTokens provides a mock function with given fields: userID, roles
func (_m *MockTokenService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	ret := _m.Called(userID, roles)

	if len(ret) == 0 {
		panic("no return value specified for GenerateTokens")
	}

	if rf, ok := ret.Get(0).(func(uuid.UUID, []string) (string, string, error)); ok {
		return rf(userID, roles)
	}

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 string
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(string)
	}

	var r2 error
	r2 = ret.Error(2)

	return r0, r1, r2
}

// MockTokenService_GenerateTokens_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateTokens'
type MockTokenService_GenerateTokens_Call struct {
	*mock.Call
}

// GenerateTokens is a helper method to define mock.On call
//   - userID uuid.UUID
//   - roles []string
func (_e *MockTokenService_Expecter) GenerateTokens(userID interface{}, roles interface{}) *MockTokenService_GenerateTokens_Call {
	return &MockTokenService_GenerateTokens_Call{Call: _e.mock.On("GenerateTokens", userID, roles)}
}

func (_c *MockTokenService_GenerateTokens_Call) Run(run func(userID uuid.UUID, roles []string)) *MockTokenService_GenerateTokens_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(uuid.UUID), args[1].([]string))
	})
	return _c
}

func (_c *MockTokenService_GenerateTokens_Call) Return(_a0 string, _a1 string, _a2 error) *MockTokenService_GenerateTokens_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockTokenService_GenerateTokens_Call) RunAndReturn(run func(uuid.UUID, []string) (string, string, error)) *MockTokenService_GenerateTokens_Call {
	_c.Call.Return(run)
	return _c
}

// ValidateToken provides a mock function with given fields: tokenString
func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	if len(ret) == 0 {
		panic("no return value specified for ValidateToken")
	}

	if rf, ok := ret.Get(0).(func(string) (*service.Claims, error)); ok {
		return rf(tokenString)
	}

	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockTokenService_ValidateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ValidateToken'
type MockTokenService_ValidateToken_Call struct {
	*mock.Call
}

// ValidateToken is a helper method to define mock.On call
//   - tokenString string
func (_e *MockTokenService_Expecter) ValidateToken(tokenString interface{}) *MockTokenService_ValidateToken_Call {
	return &MockTokenService_ValidateToken_Call{Call: _e.mock.On("ValidateToken", tokenString)}
}

func (_c *MockTokenService_ValidateToken_Call) Run(run func(tokenString string)) *MockTokenService_ValidateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenService_ValidateToken_Call) Return(_a0 *service.Claims, _a1 error) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenService_ValidateToken_Call) RunAndReturn(run func(string) (*service.Claims, error)) *MockTokenService_ValidateToken_Call {
	_c.Call.Return(run)
	return _c
}

// HashToken provides a mock function with given fields: token
func (_m *MockTokenService) HashToken(token string) string {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for HashToken")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(token)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockTokenService_HashToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HashToken'
type MockTokenService_HashToken_Call struct {
	*mock.Call
}

// HashToken is a helper method to define mock.On call
//   - token string
func (_e *MockTokenService_Expecter) HashToken(token interface{}) *MockTokenService_HashToken_Call {
	return &MockTokenService_HashToken_Call{Call: _e.mock.On("HashToken", token)}
}

func (_c *MockTokenService_HashToken_Call) Run(run func(token string)) *MockTokenService_HashToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenService_HashToken_Call) Return(_a0 string) *MockTokenService_HashToken_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTokenService_HashToken_Call) RunAndReturn(run func(string) string) *MockTokenService_HashToken_Call {
	_c.Call.Return(run)
	return _c
}

// GetRefreshTokenDuration provides a mock function with given fields
func (_m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetRefreshTokenDuration")
	}

	var r0 time.Duration
	if rf, ok := ret.Get(0).(func() time.Duration); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(time.Duration)
	}

	return r0
}

// MockTokenService_GetRefreshTokenDuration_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetRefreshTokenDuration'
type MockTokenService_GetRefreshTokenDuration_Call struct {
	*mock.Call
}

// GetRefreshTokenDuration is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) GetRefreshTokenDuration() *MockTokenService_GetRefreshTokenDuration_Call {
	return &MockTokenService_GetRefreshTokenDuration_Call{Call: _e.mock.On("GetRefreshTokenDuration")}
}

func (_c *MockTokenService_GetRefreshTokenDuration_Call) Run(run func()) *MockTokenService_GetRefreshTokenDuration_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockTokenService_GetRefreshTokenDuration_Call) Return(_a0 time.Duration) *MockTokenService_GetRefreshTokenDuration_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTokenService_GetRefreshTokenDuration_Call) RunAndReturn(run func() time.Duration) *MockTokenService_GetRefreshTokenDuration_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
