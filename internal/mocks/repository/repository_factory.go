package mocks

import (
	"blvgames/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// UserRepo provides a mock function with given fields
func (_m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for UserRepo")
	}

	var r0 repository.UserRepository
	if rf, ok := ret.Get(0).(func() repository.UserRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.UserRepository)
	}

	return r0
}

// MockRepositoryFactory_UserRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UserRepo'
type MockRepositoryFactory_UserRepo_Call struct {
	*mock.Call
}

// UserRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) UserRepo() *MockRepositoryFactory_UserRepo_Call {
	return &MockRepositoryFactory_UserRepo_Call{Call: _e.mock.On("UserRepo")}
}

func (_c *MockRepositoryFactory_UserRepo_Call) Run(run func()) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) Return(_a0 repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_UserRepo_Call) RunAndReturn(run func() repository.UserRepository) *MockRepositoryFactory_UserRepo_Call {
	_c.Call.Return(run)
	return _c
}

// AuthRepo provides a mock function with given fields
func (_m *MockRepositoryFactory) AuthRepo() repository.AuthRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for AuthRepo")
	}

	var r0 repository.AuthRepository
	if rf, ok := ret.Get(0).(func() repository.AuthRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.AuthRepository)
	}

	return r0
}

// MockRepositoryFactory_AuthRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AuthRepo'
type MockRepositoryFactory_AuthRepo_Call struct {
	*mock.Call
}

// AuthRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) AuthRepo() *MockRepositoryFactory_AuthRepo_Call {
	return &MockRepositoryFactory_AuthRepo_Call{Call: _e.mock.On("AuthRepo")}
}

func (_c *MockRepositoryFactory_AuthRepo_Call) Run(run func()) *MockRepositoryFactory_AuthRepo_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_AuthRepo_Call) Return(_a0 repository.AuthRepository) *MockRepositoryFactory_AuthRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_AuthRepo_Call) RunAndReturn(run func() repository.AuthRepository) *MockRepositoryFactory_AuthRepo_Call {
	_c.Call.Return(run)
	return _c
}

// RefreshTokenRepo provides a mock function with given fields
func (_m *MockRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for RefreshTokenRepo")
	}

	var r0 repository.RefreshTokenRepository
	if rf, ok := ret.Get(0).(func() repository.RefreshTokenRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.RefreshTokenRepository)
	}

	return r0
}

// MockRepositoryFactory_RefreshTokenRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RefreshTokenRepo'
type MockRepositoryFactory_RefreshTokenRepo_Call struct {
	*mock.Call
}

// RefreshTokenRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) RefreshTokenRepo() *MockRepositoryFactory_RefreshTokenRepo_Call {
	return &MockRepositoryFactory_RefreshTokenRepo_Call{Call: _e.mock.On("RefreshTokenRepo")}
}

func (_c *MockRepositoryFactory_RefreshTokenRepo_Call) Run(run func()) *MockRepositoryFactory_RefreshTokenRepo_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_RefreshTokenRepo_Call) Return(_a0 repository.RefreshTokenRepository) *MockRepositoryFactory_RefreshTokenRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_RefreshTokenRepo_Call) RunAndReturn(run func() repository.RefreshTokenRepository) *MockRepositoryFactory_RefreshTokenRepo_Call {
	_c.Call.Return(run)
	return _c
}

// GameRepo provides a mock function with given fields
func (_m *MockRepositoryFactory) GameRepo() repository.GameRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GameRepo")
	}

	var r0 repository.GameRepository
	if rf, ok := ret.Get(0).(func() repository.GameRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.GameRepository)
	}

	return r0
}

// MockRepositoryFactory_GameRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GameRepo'
type MockRepositoryFactory_GameRepo_Call struct {
	*mock.Call
}

// GameRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) GameRepo() *MockRepositoryFactory_GameRepo_Call {
	return &MockRepositoryFactory_GameRepo_Call{Call: _e.mock.On("GameRepo")}
}

func (_c *MockRepositoryFactory_GameRepo_Call) Run(run func()) *MockRepositoryFactory_GameRepo_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_GameRepo_Call) Return(_a0 repository.GameRepository) *MockRepositoryFactory_GameRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_GameRepo_Call) RunAndReturn(run func() repository.GameRepository) *MockRepositoryFactory_GameRepo_Call {
	_c.Call.Return(run)
	return _c
}

// GameImageRepo provides a mock function with given fields
func (_m *MockRepositoryFactory) GameImageRepo() repository.GameImageRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GameImageRepo")
	}

	var r0 repository.GameImageRepository
	if rf, ok := ret.Get(0).(func() repository.GameImageRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.GameImageRepository)
	}

	return r0
}

// MockRepositoryFactory_GameImageRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GameImageRepo'
type MockRepositoryFactory_GameImageRepo_Call struct {
	*mock.Call
}

// GameImageRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) GameImageRepo() *MockRepositoryFactory_GameImageRepo_Call {
	return &MockRepositoryFactory_GameImageRepo_Call{Call: _e.mock.On("GameImageRepo")}
}

func (_c *MockRepositoryFactory_GameImageRepo_Call) Run(run func()) *MockRepositoryFactory_GameImageRepo_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_GameImageRepo_Call) Return(_a0 repository.GameImageRepository) *MockRepositoryFactory_GameImageRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_GameImageRepo_Call) RunAndReturn(run func() repository.GameImageRepository) *MockRepositoryFactory_GameImageRepo_Call {
	_c.Call.Return(run)
	return _c
}

// ModerationEventRepo provides a mock function with given fields
func (_m *MockRepositoryFactory) ModerationEventRepo() repository.ModerationEventRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ModerationEventRepo")
	}

	var r0 repository.ModerationEventRepository
	if rf, ok := ret.Get(0).(func() repository.ModerationEventRepository); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(repository.ModerationEventRepository)
	}

	return r0
}

// MockRepositoryFactory_ModerationEventRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ModerationEventRepo'
type MockRepositoryFactory_ModerationEventRepo_Call struct {
	*mock.Call
}

// ModerationEventRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) ModerationEventRepo() *MockRepositoryFactory_ModerationEventRepo_Call {
	return &MockRepositoryFactory_ModerationEventRepo_Call{Call: _e.mock.On("ModerationEventRepo")}
}

func (_c *MockRepositoryFactory_ModerationEventRepo_Call) Run(run func()) *MockRepositoryFactory_ModerationEventRepo_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_ModerationEventRepo_Call) Return(_a0 repository.ModerationEventRepository) *MockRepositoryFactory_ModerationEventRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_ModerationEventRepo_Call) RunAndReturn(run func() repository.ModerationEventRepository) *MockRepositoryFactory_ModerationEventRepo_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
