package mocks

import (
	"context"

	"blvgames/internal/domain/entity"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAnalyticsUsecase is a mock type for the AnalyticsUsecase type
type MockAnalyticsUsecase struct {
	mock.Mock
}

type MockAnalyticsUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAnalyticsUsecase) EXPECT() *MockAnalyticsUsecase_Expecter {
	return &MockAnalyticsUsecase_Expecter{mock: &_m.Mock}
}

// TrackClick provides a mock function with given fields: ctx, input
func (_m *MockAnalyticsUsecase) TrackClick(ctx context.Context, input *usecase.TrackClickInput) error {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for TrackClick")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.TrackClickInput) error); ok {
		r0 = rf(ctx, input)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockAnalyticsUsecase_TrackClick_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TrackClick'
type MockAnalyticsUsecase_TrackClick_Call struct {
	*mock.Call
}

// TrackClick is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.TrackClickInput
func (_e *MockAnalyticsUsecase_Expecter) TrackClick(ctx interface{}, input interface{}) *MockAnalyticsUsecase_TrackClick_Call {
	return &MockAnalyticsUsecase_TrackClick_Call{Call: _e.mock.On("TrackClick", ctx, input)}
}

func (_c *MockAnalyticsUsecase_TrackClick_Call) Run(run func(ctx context.Context, input *usecase.TrackClickInput)) *MockAnalyticsUsecase_TrackClick_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.TrackClickInput))
	})
	return _c
}

func (_c *MockAnalyticsUsecase_TrackClick_Call) Return(_a0 error) *MockAnalyticsUsecase_TrackClick_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockAnalyticsUsecase_TrackClick_Call) RunAndReturn(run func(context.Context, *usecase.TrackClickInput) error) *MockAnalyticsUsecase_TrackClick_Call {
	_c.Call.Return(run)
	return _c
}

// UserStats provides a mock function with given fields: ctx, viewer, userID
func (_m *MockAnalyticsUsecase) UserStats(ctx context.Context, viewer *entity.Viewer, userID uuid.UUID) ([]entity.DailyClickStat, error) {
	ret := _m.Called(ctx, viewer, userID)

	if len(ret) == 0 {
		panic("no return value specified for UserStats")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, uuid.UUID) ([]entity.DailyClickStat, error)); ok {
		return rf(ctx, viewer, userID)
	}

	var r0 []entity.DailyClickStat
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.DailyClickStat)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockAnalyticsUsecase_UserStats_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UserStats'
type MockAnalyticsUsecase_UserStats_Call struct {
	*mock.Call
}

// UserStats is a helper method to define mock.On call
//   - ctx context.Context
//   - viewer *entity.Viewer
//   - userID uuid.UUID
func (_e *MockAnalyticsUsecase_Expecter) UserStats(ctx interface{}, viewer interface{}, userID interface{}) *MockAnalyticsUsecase_UserStats_Call {
	return &MockAnalyticsUsecase_UserStats_Call{Call: _e.mock.On("UserStats", ctx, viewer, userID)}
}

func (_c *MockAnalyticsUsecase_UserStats_Call) Run(run func(ctx context.Context, viewer *entity.Viewer, userID uuid.UUID)) *MockAnalyticsUsecase_UserStats_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockAnalyticsUsecase_UserStats_Call) Return(_a0 []entity.DailyClickStat, _a1 error) *MockAnalyticsUsecase_UserStats_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAnalyticsUsecase_UserStats_Call) RunAndReturn(run func(context.Context, *entity.Viewer, uuid.UUID) ([]entity.DailyClickStat, error)) *MockAnalyticsUsecase_UserStats_Call {
	_c.Call.Return(run)
	return _c
}

// GlobalStats provides a mock function with given fields: ctx, viewer
func (_m *MockAnalyticsUsecase) GlobalStats(ctx context.Context, viewer *entity.Viewer) ([]entity.DailyGlobalStat, error) {
	ret := _m.Called(ctx, viewer)

	if len(ret) == 0 {
		panic("no return value specified for GlobalStats")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer) ([]entity.DailyGlobalStat, error)); ok {
		return rf(ctx, viewer)
	}

	var r0 []entity.DailyGlobalStat
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.DailyGlobalStat)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockAnalyticsUsecase_GlobalStats_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GlobalStats'
type MockAnalyticsUsecase_GlobalStats_Call struct {
	*mock.Call
}

// GlobalStats is a helper method to define mock.On call
//   - ctx context.Context
//   - viewer *entity.Viewer
func (_e *MockAnalyticsUsecase_Expecter) GlobalStats(ctx interface{}, viewer interface{}) *MockAnalyticsUsecase_GlobalStats_Call {
	return &MockAnalyticsUsecase_GlobalStats_Call{Call: _e.mock.On("GlobalStats", ctx, viewer)}
}

func (_c *MockAnalyticsUsecase_GlobalStats_Call) Run(run func(ctx context.Context, viewer *entity.Viewer)) *MockAnalyticsUsecase_GlobalStats_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer))
	})
	return _c
}

func (_c *MockAnalyticsUsecase_GlobalStats_Call) Return(_a0 []entity.DailyGlobalStat, _a1 error) *MockAnalyticsUsecase_GlobalStats_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAnalyticsUsecase_GlobalStats_Call) RunAndReturn(run func(context.Context, *entity.Viewer) ([]entity.DailyGlobalStat, error)) *MockAnalyticsUsecase_GlobalStats_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAnalyticsUsecase creates a new instance of MockAnalyticsUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAnalyticsUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAnalyticsUsecase {
	m := &MockAnalyticsUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
