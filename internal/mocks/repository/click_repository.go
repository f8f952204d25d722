package mocks

import (
	"context"
	"time"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockClickRepository is a mock type for the ClickRepository type
type MockClickRepository struct {
	mock.Mock
}

type MockClickRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClickRepository) EXPECT() *MockClickRepository_Expecter {
	return &MockClickRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, click
func (_m *MockClickRepository) Create(ctx context.Context, click *entity.WhatsAppClick) error {
	ret := _m.Called(ctx, click)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.WhatsAppClick) error); ok {
		r0 = rf(ctx, click)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockClickRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockClickRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - click *entity.WhatsAppClick
func (_e *MockClickRepository_Expecter) Create(ctx interface{}, click interface{}) *MockClickRepository_Create_Call {
	return &MockClickRepository_Create_Call{Call: _e.mock.On("Create", ctx, click)}
}

func (_c *MockClickRepository_Create_Call) Run(run func(ctx context.Context, click *entity.WhatsAppClick)) *MockClickRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.WhatsAppClick))
	})
	return _c
}

func (_c *MockClickRepository_Create_Call) Return(_a0 error) *MockClickRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockClickRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.WhatsAppClick) error) *MockClickRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// DailyStatsByUser provides a mock function with given fields: ctx, userID, loc, limit
func (_m *MockClickRepository) DailyStatsByUser(ctx context.Context, userID uuid.UUID, loc *time.Location, limit int) ([]entity.DailyClickStat, error) {
	ret := _m.Called(ctx, userID, loc, limit)

	if len(ret) == 0 {
		panic("no return value specified for DailyStatsByUser")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *time.Location, int) ([]entity.DailyClickStat, error)); ok {
		return rf(ctx, userID, loc, limit)
	}

	var r0 []entity.DailyClickStat
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.DailyClickStat)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockClickRepository_DailyStatsByUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DailyStatsByUser'
type MockClickRepository_DailyStatsByUser_Call struct {
	*mock.Call
}

// DailyStatsByUser is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - loc *time.Location
//   - limit int
func (_e *MockClickRepository_Expecter) DailyStatsByUser(ctx interface{}, userID interface{}, loc interface{}, limit interface{}) *MockClickRepository_DailyStatsByUser_Call {
	return &MockClickRepository_DailyStatsByUser_Call{Call: _e.mock.On("DailyStatsByUser", ctx, userID, loc, limit)}
}

func (_c *MockClickRepository_DailyStatsByUser_Call) Run(run func(ctx context.Context, userID uuid.UUID, loc *time.Location, limit int)) *MockClickRepository_DailyStatsByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*time.Location), args[3].(int))
	})
	return _c
}

func (_c *MockClickRepository_DailyStatsByUser_Call) Return(_a0 []entity.DailyClickStat, _a1 error) *MockClickRepository_DailyStatsByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClickRepository_DailyStatsByUser_Call) RunAndReturn(run func(context.Context, uuid.UUID, *time.Location, int) ([]entity.DailyClickStat, error)) *MockClickRepository_DailyStatsByUser_Call {
	_c.Call.Return(run)
	return _c
}

// DailyGlobalStats provides a mock function with given fields: ctx, loc, limit
func (_m *MockClickRepository) DailyGlobalStats(ctx context.Context, loc *time.Location, limit int) ([]entity.DailyGlobalStat, error) {
	ret := _m.Called(ctx, loc, limit)

	if len(ret) == 0 {
		panic("no return value specified for DailyGlobalStats")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *time.Location, int) ([]entity.DailyGlobalStat, error)); ok {
		return rf(ctx, loc, limit)
	}

	var r0 []entity.DailyGlobalStat
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.DailyGlobalStat)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockClickRepository_DailyGlobalStats_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DailyGlobalStats'
type MockClickRepository_DailyGlobalStats_Call struct {
	*mock.Call
}

// DailyGlobalStats is a helper method to define mock.On call
//   - ctx context.Context
//   - loc *time.Location
//   - limit int
func (_e *MockClickRepository_Expecter) DailyGlobalStats(ctx interface{}, loc interface{}, limit interface{}) *MockClickRepository_DailyGlobalStats_Call {
	return &MockClickRepository_DailyGlobalStats_Call{Call: _e.mock.On("DailyGlobalStats", ctx, loc, limit)}
}

func (_c *MockClickRepository_DailyGlobalStats_Call) Run(run func(ctx context.Context, loc *time.Location, limit int)) *MockClickRepository_DailyGlobalStats_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*time.Location), args[2].(int))
	})
	return _c
}

func (_c *MockClickRepository_DailyGlobalStats_Call) Return(_a0 []entity.DailyGlobalStat, _a1 error) *MockClickRepository_DailyGlobalStats_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockClickRepository_DailyGlobalStats_Call) RunAndReturn(run func(context.Context, *time.Location, int) ([]entity.DailyGlobalStat, error)) *MockClickRepository_DailyGlobalStats_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockClickRepository creates a new instance of MockClickRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockClickRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClickRepository {
	m := &MockClickRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
