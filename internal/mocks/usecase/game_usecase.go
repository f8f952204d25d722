package mocks

import (
	"context"

	"blvgames/internal/domain/entity"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGameUsecase is a mock type for the GameUsecase type
type MockGameUsecase struct {
	mock.Mock
}

type MockGameUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGameUsecase) EXPECT() *MockGameUsecase_Expecter {
	return &MockGameUsecase_Expecter{mock: &_m.Mock}
}

// CreateGame provides a mock function with given fields: ctx, viewer, input
func (_m *MockGameUsecase) CreateGame(ctx context.Context, viewer *entity.Viewer, input *usecase.CreateGameInput) (*entity.Game, error) {
	ret := _m.Called(ctx, viewer, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateGame")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, *usecase.CreateGameInput) (*entity.Game, error)); ok {
		return rf(ctx, viewer, input)
	}

	var r0 *entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockGameUsecase_CreateGame_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateGame'
type MockGameUsecase_CreateGame_Call struct {
	*mock.Call
}

// CreateGame is a helper method to define mock.On call
//   - ctx context.Context
//   - viewer *entity.Viewer
//   - input *usecase.CreateGameInput
func (_e *MockGameUsecase_Expecter) CreateGame(ctx interface{}, viewer interface{}, input interface{}) *MockGameUsecase_CreateGame_Call {
	return &MockGameUsecase_CreateGame_Call{Call: _e.mock.On("CreateGame", ctx, viewer, input)}
}

func (_c *MockGameUsecase_CreateGame_Call) Run(run func(ctx context.Context, viewer *entity.Viewer, input *usecase.CreateGameInput)) *MockGameUsecase_CreateGame_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(*usecase.CreateGameInput))
	})
	return _c
}

func (_c *MockGameUsecase_CreateGame_Call) Return(_a0 *entity.Game, _a1 error) *MockGameUsecase_CreateGame_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGameUsecase_CreateGame_Call) RunAndReturn(run func(context.Context, *entity.Viewer, *usecase.CreateGameInput) (*entity.Game, error)) *MockGameUsecase_CreateGame_Call {
	_c.Call.Return(run)
	return _c
}

// GetGame provides a mock function with given fields: ctx, viewer, id
func (_m *MockGameUsecase) GetGame(ctx context.Context, viewer *entity.Viewer, id uuid.UUID) (*entity.Game, error) {
	ret := _m.Called(ctx, viewer, id)

	if len(ret) == 0 {
		panic("no return value specified for GetGame")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, uuid.UUID) (*entity.Game, error)); ok {
		return rf(ctx, viewer, id)
	}

	var r0 *entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockGameUsecase_GetGame_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetGame'
type MockGameUsecase_GetGame_Call struct {
	*mock.Call
}

// GetGame is a helper method to define mock.On call
//   - ctx context.Context
//   - viewer *entity.Viewer
//   - id uuid.UUID
func (_e *MockGameUsecase_Expecter) GetGame(ctx interface{}, viewer interface{}, id interface{}) *MockGameUsecase_GetGame_Call {
	return &MockGameUsecase_GetGame_Call{Call: _e.mock.On("GetGame", ctx, viewer, id)}
}

func (_c *MockGameUsecase_GetGame_Call) Run(run func(ctx context.Context, viewer *entity.Viewer, id uuid.UUID)) *MockGameUsecase_GetGame_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockGameUsecase_GetGame_Call) Return(_a0 *entity.Game, _a1 error) *MockGameUsecase_GetGame_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGameUsecase_GetGame_Call) RunAndReturn(run func(context.Context, *entity.Viewer, uuid.UUID) (*entity.Game, error)) *MockGameUsecase_GetGame_Call {
	_c.Call.Return(run)
	return _c
}

// ListGames provides a mock function with given fields: ctx, viewer, input
func (_m *MockGameUsecase) ListGames(ctx context.Context, viewer *entity.Viewer, input *usecase.ListGamesInput) ([]*entity.Game, error) {
	ret := _m.Called(ctx, viewer, input)

	if len(ret) == 0 {
		panic("no return value specified for ListGames")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, *usecase.ListGamesInput) ([]*entity.Game, error)); ok {
		return rf(ctx, viewer, input)
	}

	var r0 []*entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockGameUsecase_ListGames_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListGames'
type MockGameUsecase_ListGames_Call struct {
	*mock.Call
}

// ListGames is a helper method to define mock.On call
//   - ctx context.Context
//   - viewer *entity.Viewer
//   - input *usecase.ListGamesInput
func (_e *MockGameUsecase_Expecter) ListGames(ctx interface{}, viewer interface{}, input interface{}) *MockGameUsecase_ListGames_Call {
	return &MockGameUsecase_ListGames_Call{Call: _e.mock.On("ListGames", ctx, viewer, input)}
}

func (_c *MockGameUsecase_ListGames_Call) Run(run func(ctx context.Context, viewer *entity.Viewer, input *usecase.ListGamesInput)) *MockGameUsecase_ListGames_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(*usecase.ListGamesInput))
	})
	return _c
}

func (_c *MockGameUsecase_ListGames_Call) Return(_a0 []*entity.Game, _a1 error) *MockGameUsecase_ListGames_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGameUsecase_ListGames_Call) RunAndReturn(run func(context.Context, *entity.Viewer, *usecase.ListGamesInput) ([]*entity.Game, error)) *MockGameUsecase_ListGames_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateGame provides a mock function with given fields: ctx, viewer, id, patch
func (_m *MockGameUsecase) UpdateGame(ctx context.Context, viewer *entity.Viewer, id uuid.UUID, patch entity.GamePatch) error {
	ret := _m.Called(ctx, viewer, id, patch)

	if len(ret) == 0 {
		panic("no return value specified for UpdateGame")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, uuid.UUID, entity.GamePatch) error); ok {
		r0 = rf(ctx, viewer, id, patch)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockGameUsecase_UpdateGame_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateGame'
type MockGameUsecase_UpdateGame_Call struct {
	*mock.Call
}

// UpdateGame is a helper method to define mock.On call
//   - ctx context.Context
//   - viewer *entity.Viewer
//   - id uuid.UUID
//   - patch entity.GamePatch
func (_e *MockGameUsecase_Expecter) UpdateGame(ctx interface{}, viewer interface{}, id interface{}, patch interface{}) *MockGameUsecase_UpdateGame_Call {
	return &MockGameUsecase_UpdateGame_Call{Call: _e.mock.On("UpdateGame", ctx, viewer, id, patch)}
}

func (_c *MockGameUsecase_UpdateGame_Call) Run(run func(ctx context.Context, viewer *entity.Viewer, id uuid.UUID, patch entity.GamePatch)) *MockGameUsecase_UpdateGame_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(uuid.UUID), args[3].(entity.GamePatch))
	})
	return _c
}

func (_c *MockGameUsecase_UpdateGame_Call) Return(_a0 error) *MockGameUsecase_UpdateGame_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGameUsecase_UpdateGame_Call) RunAndReturn(run func(context.Context, *entity.Viewer, uuid.UUID, entity.GamePatch) error) *MockGameUsecase_UpdateGame_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteGame provides a mock function with given fields: ctx, viewer, id
func (_m *MockGameUsecase) DeleteGame(ctx context.Context, viewer *entity.Viewer, id uuid.UUID) error {
	ret := _m.Called(ctx, viewer, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteGame")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, uuid.UUID) error); ok {
		r0 = rf(ctx, viewer, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockGameUsecase_DeleteGame_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteGame'
type MockGameUsecase_DeleteGame_Call struct {
	*mock.Call
}

// DeleteGame is a helper method to define mock.On call
//   - ctx context.Context
//   - viewer *entity.Viewer
//   - id uuid.UUID
func (_e *MockGameUsecase_Expecter) DeleteGame(ctx interface{}, viewer interface{}, id interface{}) *MockGameUsecase_DeleteGame_Call {
	return &MockGameUsecase_DeleteGame_Call{Call: _e.mock.On("DeleteGame", ctx, viewer, id)}
}

func (_c *MockGameUsecase_DeleteGame_Call) Run(run func(ctx context.Context, viewer *entity.Viewer, id uuid.UUID)) *MockGameUsecase_DeleteGame_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockGameUsecase_DeleteGame_Call) Return(_a0 error) *MockGameUsecase_DeleteGame_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGameUsecase_DeleteGame_Call) RunAndReturn(run func(context.Context, *entity.Viewer, uuid.UUID) error) *MockGameUsecase_DeleteGame_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGameUsecase creates a new instance of MockGameUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGameUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGameUsecase {
	m := &MockGameUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
