package mocks

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockModerationEventRepository is a mock type for the ModerationEventRepository type
type MockModerationEventRepository struct {
	mock.Mock
}

type MockModerationEventRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockModerationEventRepository) EXPECT() *MockModerationEventRepository_Expecter {
	return &MockModerationEventRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, event
func (_m *MockModerationEventRepository) Create(ctx context.Context, event *entity.ModerationEvent) error {
	ret := _m.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.ModerationEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockModerationEventRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockModerationEventRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - event *entity.ModerationEvent
func (_e *MockModerationEventRepository_Expecter) Create(ctx interface{}, event interface{}) *MockModerationEventRepository_Create_Call {
	return &MockModerationEventRepository_Create_Call{Call: _e.mock.On("Create", ctx, event)}
}

func (_c *MockModerationEventRepository_Create_Call) Run(run func(ctx context.Context, event *entity.ModerationEvent)) *MockModerationEventRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.ModerationEvent))
	})
	return _c
}

func (_c *MockModerationEventRepository_Create_Call) Return(_a0 error) *MockModerationEventRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockModerationEventRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.ModerationEvent) error) *MockModerationEventRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// ListByGameID provides a mock function with given fields: ctx, gameID
func (_m *MockModerationEventRepository) ListByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.ModerationEvent, error) {
	ret := _m.Called(ctx, gameID)

	if len(ret) == 0 {
		panic("no return value specified for ListByGameID")
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

// MockModerationEventRepository_ListByGameID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByGameID'
type MockModerationEventRepository_ListByGameID_Call struct {
	*mock.Call
}

// ListByGameID is a helper method to define mock.On call
//   - ctx context.Context
//   - gameID uuid.UUID
func (_e *MockModerationEventRepository_Expecter) ListByGameID(ctx interface{}, gameID interface{}) *MockModerationEventRepository_ListByGameID_Call {
	return &MockModerationEventRepository_ListByGameID_Call{Call: _e.mock.On("ListByGameID", ctx, gameID)}
}

func (_c *MockModerationEventRepository_ListByGameID_Call) Run(run func(ctx context.Context, gameID uuid.UUID)) *MockModerationEventRepository_ListByGameID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockModerationEventRepository_ListByGameID_Call) Return(_a0 []*entity.ModerationEvent, _a1 error) *MockModerationEventRepository_ListByGameID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockModerationEventRepository_ListByGameID_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.ModerationEvent, error)) *MockModerationEventRepository_ListByGameID_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteByGameID provides a mock function with given fields: ctx, gameID
func (_m *MockModerationEventRepository) DeleteByGameID(ctx context.Context, gameID uuid.UUID) error {
	ret := _m.Called(ctx, gameID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteByGameID")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, gameID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockModerationEventRepository_DeleteByGameID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteByGameID'
type MockModerationEventRepository_DeleteByGameID_Call struct {
	*mock.Call
}

// DeleteByGameID is a helper method to define mock.On call
//   - ctx context.Context
//   - gameID uuid.UUID
func (_e *MockModerationEventRepository_Expecter) DeleteByGameID(ctx interface{}, gameID interface{}) *MockModerationEventRepository_DeleteByGameID_Call {
	return &MockModerationEventRepository_DeleteByGameID_Call{Call: _e.mock.On("DeleteByGameID", ctx, gameID)}
}

func (_c *MockModerationEventRepository_DeleteByGameID_Call) Run(run func(ctx context.Context, gameID uuid.UUID)) *MockModerationEventRepository_DeleteByGameID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockModerationEventRepository_DeleteByGameID_Call) Return(_a0 error) *MockModerationEventRepository_DeleteByGameID_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockModerationEventRepository_DeleteByGameID_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockModerationEventRepository_DeleteByGameID_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockModerationEventRepository creates a new instance of MockModerationEventRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockModerationEventRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockModerationEventRepository {
	m := &MockModerationEventRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
