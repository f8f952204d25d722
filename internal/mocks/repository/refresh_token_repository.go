package mocks

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRefreshTokenRepository is a mock type for the RefreshTokenRepository type
type MockRefreshTokenRepository struct {
	mock.Mock
}

type MockRefreshTokenRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRefreshTokenRepository) EXPECT() *MockRefreshTokenRepository_Expecter {
	return &MockRefreshTokenRepository_Expecter{mock: &_m.Mock}
}

// CreateRefreshToken provides a mock function with given fields: ctx, token
func (_m *MockRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for CreateRefreshToken")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.RefreshToken) error); ok {
		r0 = rf(ctx, token)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRefreshTokenRepository_CreateRefreshToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateRefreshToken'
type MockRefreshTokenRepository_CreateRefreshToken_Call struct {
	*mock.Call
}

// CreateRefreshToken is a helper method to define mock.On call
//   - ctx context.Context
//   - token *entity.RefreshToken
func (_e *MockRefreshTokenRepository_Expecter) CreateRefreshToken(ctx interface{}, token interface{}) *MockRefreshTokenRepository_CreateRefreshToken_Call {
	return &MockRefreshTokenRepository_CreateRefreshToken_Call{Call: _e.mock.On("CreateRefreshToken", ctx, token)}
}

func (_c *MockRefreshTokenRepository_CreateRefreshToken_Call) Run(run func(ctx context.Context, token *entity.RefreshToken)) *MockRefreshTokenRepository_CreateRefreshToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.RefreshToken))
	})
	return _c
}

func (_c *MockRefreshTokenRepository_CreateRefreshToken_Call) Return(_a0 error) *MockRefreshTokenRepository_CreateRefreshToken_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRefreshTokenRepository_CreateRefreshToken_Call) RunAndReturn(run func(context.Context, *entity.RefreshToken) error) *MockRefreshTokenRepository_CreateRefreshToken_Call {
	_c.Call.Return(run)
	return _c
}

// FindRefreshTokenByHash provides a mock function with given fields: ctx, tokenHash
func (_m *MockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	ret := _m.Called(ctx, tokenHash)

	if len(ret) == 0 {
		panic("no return value specified for FindRefreshTokenByHash")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.RefreshToken, error)); ok {
		return rf(ctx, tokenHash)
	}

	var r0 *entity.RefreshToken
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.RefreshToken)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockRefreshTokenRepository_FindRefreshTokenByHash_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindRefreshTokenByHash'
type MockRefreshTokenRepository_FindRefreshTokenByHash_Call struct {
	*mock.Call
}

// FindRefreshTokenByHash is a helper method to define mock.On call
//   - ctx context.Context
//   - tokenHash string
func (_e *MockRefreshTokenRepository_Expecter) FindRefreshTokenByHash(ctx interface{}, tokenHash interface{}) *MockRefreshTokenRepository_FindRefreshTokenByHash_Call {
	return &MockRefreshTokenRepository_FindRefreshTokenByHash_Call{Call: _e.mock.On("FindRefreshTokenByHash", ctx, tokenHash)}
}

func (_c *MockRefreshTokenRepository_FindRefreshTokenByHash_Call) Run(run func(ctx context.Context, tokenHash string)) *MockRefreshTokenRepository_FindRefreshTokenByHash_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRefreshTokenRepository_FindRefreshTokenByHash_Call) Return(_a0 *entity.RefreshToken, _a1 error) *MockRefreshTokenRepository_FindRefreshTokenByHash_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRefreshTokenRepository_FindRefreshTokenByHash_Call) RunAndReturn(run func(context.Context, string) (*entity.RefreshToken, error)) *MockRefreshTokenRepository_FindRefreshTokenByHash_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteRefreshTokenByHash provides a mock function with given fields: ctx, tokenHash
func (_m *MockRefreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	ret := _m.Called(ctx, tokenHash)

	if len(ret) == 0 {
		panic("no return value specified for DeleteRefreshTokenByHash")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, tokenHash)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteRefreshTokenByHash'
type MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call struct {
	*mock.Call
}

// DeleteRefreshTokenByHash is a helper method to define mock.On call
//   - ctx context.Context
//   - tokenHash string
func (_e *MockRefreshTokenRepository_Expecter) DeleteRefreshTokenByHash(ctx interface{}, tokenHash interface{}) *MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call {
	return &MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call{Call: _e.mock.On("DeleteRefreshTokenByHash", ctx, tokenHash)}
}

func (_c *MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call) Run(run func(ctx context.Context, tokenHash string)) *MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call) Return(_a0 error) *MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call) RunAndReturn(run func(context.Context, string) error) *MockRefreshTokenRepository_DeleteRefreshTokenByHash_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteRefreshTokensByUserID provides a mock function with given fields: ctx, userID
func (_m *MockRefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteRefreshTokensByUserID")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteRefreshTokensByUserID'
type MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call struct {
	*mock.Call
}

// DeleteRefreshTokensByUserID is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockRefreshTokenRepository_Expecter) DeleteRefreshTokensByUserID(ctx interface{}, userID interface{}) *MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call {
	return &MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call{Call: _e.mock.On("DeleteRefreshTokensByUserID", ctx, userID)}
}

func (_c *MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call) Return(_a0 error) *MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockRefreshTokenRepository_DeleteRefreshTokensByUserID_Call {
	_c.Call.Return(run)
	return _c
}

// CountActiveSessionsByUserID provides a mock function with given fields: ctx, userID
func (_m *MockRefreshTokenRepository) CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for CountActiveSessionsByUserID")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (int, error)); ok {
		return rf(ctx, userID)
	}

	var r0 int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(int)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockRefreshTokenRepository_CountActiveSessionsByUserID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CountActiveSessionsByUserID'
type MockRefreshTokenRepository_CountActiveSessionsByUserID_Call struct {
	*mock.Call
}

// CountActiveSessionsByUserID is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockRefreshTokenRepository_Expecter) CountActiveSessionsByUserID(ctx interface{}, userID interface{}) *MockRefreshTokenRepository_CountActiveSessionsByUserID_Call {
	return &MockRefreshTokenRepository_CountActiveSessionsByUserID_Call{Call: _e.mock.On("CountActiveSessionsByUserID", ctx, userID)}
}

func (_c *MockRefreshTokenRepository_CountActiveSessionsByUserID_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockRefreshTokenRepository_CountActiveSessionsByUserID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockRefreshTokenRepository_CountActiveSessionsByUserID_Call) Return(_a0 int, _a1 error) *MockRefreshTokenRepository_CountActiveSessionsByUserID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRefreshTokenRepository_CountActiveSessionsByUserID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (int, error)) *MockRefreshTokenRepository_CountActiveSessionsByUserID_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRefreshTokenRepository creates a new instance of MockRefreshTokenRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRefreshTokenRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRefreshTokenRepository {
	m := &MockRefreshTokenRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
