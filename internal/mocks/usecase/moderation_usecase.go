package mocks

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockModerationUsecase is a mock type for the ModerationUsecase type
type MockModerationUsecase struct {
	mock.Mock
}

type MockModerationUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockModerationUsecase) EXPECT() *MockModerationUsecase_Expecter {
	return &MockModerationUsecase_Expecter{mock: &_m.Mock}
}

// Approve provides a mock function with given fields: ctx, actor, gameID, reason
func (_m *MockModerationUsecase) Approve(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error) {
	ret := _m.Called(ctx, actor, gameID, reason)

	if len(ret) == 0 {
		panic("no return value specified for Approve")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, uuid.UUID, string) (*entity.Game, error)); ok {
		return rf(ctx, actor, gameID, reason)
	}

	var r0 *entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockModerationUsecase_Approve_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Approve'
type MockModerationUsecase_Approve_Call struct {
	*mock.Call
}

// Approve is a helper method to define mock.On call
//   - ctx context.Context
//   - actor *entity.Viewer
//   - gameID uuid.UUID
//   - reason string
func (_e *MockModerationUsecase_Expecter) Approve(ctx interface{}, actor interface{}, gameID interface{}, reason interface{}) *MockModerationUsecase_Approve_Call {
	return &MockModerationUsecase_Approve_Call{Call: _e.mock.On("Approve", ctx, actor, gameID, reason)}
}

func (_c *MockModerationUsecase_Approve_Call) Run(run func(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string)) *MockModerationUsecase_Approve_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(uuid.UUID), args[3].(string))
	})
	return _c
}

func (_c *MockModerationUsecase_Approve_Call) Return(_a0 *entity.Game, _a1 error) *MockModerationUsecase_Approve_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockModerationUsecase_Approve_Call) RunAndReturn(run func(context.Context, *entity.Viewer, uuid.UUID, string) (*entity.Game, error)) *MockModerationUsecase_Approve_Call {
	_c.Call.Return(run)
	return _c
}

// Reject provides a mock function with given fields: ctx, actor, gameID, reason
func (_m *MockModerationUsecase) Reject(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error) {
	ret := _m.Called(ctx, actor, gameID, reason)

	if len(ret) == 0 {
		panic("no return value specified for Reject")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, uuid.UUID, string) (*entity.Game, error)); ok {
		return rf(ctx, actor, gameID, reason)
	}

	var r0 *entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockModerationUsecase_Reject_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Reject'
type MockModerationUsecase_Reject_Call struct {
	*mock.Call
}

// Reject is a helper method to define mock.On call
//   - ctx context.Context
//   - actor *entity.Viewer
//   - gameID uuid.UUID
//   - reason string
func (_e *MockModerationUsecase_Expecter) Reject(ctx interface{}, actor interface{}, gameID interface{}, reason interface{}) *MockModerationUsecase_Reject_Call {
	return &MockModerationUsecase_Reject_Call{Call: _e.mock.On("Reject", ctx, actor, gameID, reason)}
}

func (_c *MockModerationUsecase_Reject_Call) Run(run func(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string)) *MockModerationUsecase_Reject_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(uuid.UUID), args[3].(string))
	})
	return _c
}

func (_c *MockModerationUsecase_Reject_Call) Return(_a0 *entity.Game, _a1 error) *MockModerationUsecase_Reject_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockModerationUsecase_Reject_Call) RunAndReturn(run func(context.Context, *entity.Viewer, uuid.UUID, string) (*entity.Game, error)) *MockModerationUsecase_Reject_Call {
	_c.Call.Return(run)
	return _c
}

// Reopen provides a mock function with given fields: ctx, actor, gameID, reason
func (_m *MockModerationUsecase) Reopen(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error) {
	ret := _m.Called(ctx, actor, gameID, reason)

	if len(ret) == 0 {
		panic("no return value specified for Reopen")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, uuid.UUID, string) (*entity.Game, error)); ok {
		return rf(ctx, actor, gameID, reason)
	}

	var r0 *entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockModerationUsecase_Reopen_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Reopen'
type MockModerationUsecase_Reopen_Call struct {
	*mock.Call
}

// Reopen is a helper method to define mock.On call
//   - ctx context.Context
//   - actor *entity.Viewer
//   - gameID uuid.UUID
//   - reason string
func (_e *MockModerationUsecase_Expecter) Reopen(ctx interface{}, actor interface{}, gameID interface{}, reason interface{}) *MockModerationUsecase_Reopen_Call {
	return &MockModerationUsecase_Reopen_Call{Call: _e.mock.On("Reopen", ctx, actor, gameID, reason)}
}

func (_c *MockModerationUsecase_Reopen_Call) Run(run func(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string)) *MockModerationUsecase_Reopen_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(uuid.UUID), args[3].(string))
	})
	return _c
}

func (_c *MockModerationUsecase_Reopen_Call) Return(_a0 *entity.Game, _a1 error) *MockModerationUsecase_Reopen_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockModerationUsecase_Reopen_Call) RunAndReturn(run func(context.Context, *entity.Viewer, uuid.UUID, string) (*entity.Game, error)) *MockModerationUsecase_Reopen_Call {
	_c.Call.Return(run)
	return _c
}

// History provides a mock function with given fields: ctx, gameID
func (_m *MockModerationUsecase) History(ctx context.Context, gameID uuid.UUID) ([]*entity.ModerationEvent, error) {
	ret := _m.Called(ctx, gameID)

	if len(ret) == 0 {
		panic("no return value specified for History")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.ModerationEvent, error)); ok {
		return rf(ctx, gameID)
	}

	var r0 []*entity.ModerationEvent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.ModerationEvent)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockModerationUsecase_History_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'History'
type MockModerationUsecase_History_Call struct {
	*mock.Call
}

// History is a helper method to define mock.On call
//   - ctx context.Context
//   - gameID uuid.UUID
func (_e *MockModerationUsecase_Expecter) History(ctx interface{}, gameID interface{}) *MockModerationUsecase_History_Call {
	return &MockModerationUsecase_History_Call{Call: _e.mock.On("History", ctx, gameID)}
}

func (_c *MockModerationUsecase_History_Call) Run(run func(ctx context.Context, gameID uuid.UUID)) *MockModerationUsecase_History_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockModerationUsecase_History_Call) Return(_a0 []*entity.ModerationEvent, _a1 error) *MockModerationUsecase_History_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockModerationUsecase_History_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.ModerationEvent, error)) *MockModerationUsecase_History_Call {
	_c.Call.Return(run)
	return _c
}

// Queue provides a mock function with given fields: ctx
func (_m *MockModerationUsecase) Queue(ctx context.Context) ([]*entity.Game, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Queue")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Game, error)); ok {
		return rf(ctx)
	}

	var r0 []*entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockModerationUsecase_Queue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Queue'
type MockModerationUsecase_Queue_Call struct {
	*mock.Call
}

// Queue is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockModerationUsecase_Expecter) Queue(ctx interface{}) *MockModerationUsecase_Queue_Call {
	return &MockModerationUsecase_Queue_Call{Call: _e.mock.On("Queue", ctx)}
}

func (_c *MockModerationUsecase_Queue_Call) Run(run func(ctx context.Context)) *MockModerationUsecase_Queue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockModerationUsecase_Queue_Call) Return(_a0 []*entity.Game, _a1 error) *MockModerationUsecase_Queue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockModerationUsecase_Queue_Call) RunAndReturn(run func(context.Context) ([]*entity.Game, error)) *MockModerationUsecase_Queue_Call {
	_c.Call.Return(run)
	return _c
}

// SetFeatured provides a mock function with given fields: ctx, actor, gameID, featured
func (_m *MockModerationUsecase) SetFeatured(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, featured bool) (*entity.Game, error) {
	ret := _m.Called(ctx, actor, gameID, featured)

	if len(ret) == 0 {
		panic("no return value specified for SetFeatured")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, uuid.UUID, bool) (*entity.Game, error)); ok {
		return rf(ctx, actor, gameID, featured)
	}

	var r0 *entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockModerationUsecase_SetFeatured_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetFeatured'
type MockModerationUsecase_SetFeatured_Call struct {
	*mock.Call
}

// SetFeatured is a helper method to define mock.On call
//   - ctx context.Context
//   - actor *entity.Viewer
//   - gameID uuid.UUID
//   - featured bool
func (_e *MockModerationUsecase_Expecter) SetFeatured(ctx interface{}, actor interface{}, gameID interface{}, featured interface{}) *MockModerationUsecase_SetFeatured_Call {
	return &MockModerationUsecase_SetFeatured_Call{Call: _e.mock.On("SetFeatured", ctx, actor, gameID, featured)}
}

func (_c *MockModerationUsecase_SetFeatured_Call) Run(run func(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, featured bool)) *MockModerationUsecase_SetFeatured_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(uuid.UUID), args[3].(bool))
	})
	return _c
}

func (_c *MockModerationUsecase_SetFeatured_Call) Return(_a0 *entity.Game, _a1 error) *MockModerationUsecase_SetFeatured_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockModerationUsecase_SetFeatured_Call) RunAndReturn(run func(context.Context, *entity.Viewer, uuid.UUID, bool) (*entity.Game, error)) *MockModerationUsecase_SetFeatured_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockModerationUsecase creates a new instance of MockModerationUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockModerationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockModerationUsecase {
	m := &MockModerationUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
