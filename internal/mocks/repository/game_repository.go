package mocks

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGameRepository is a mock type for the GameRepository type
type MockGameRepository struct {
	mock.Mock
}

type MockGameRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGameRepository) EXPECT() *MockGameRepository_Expecter {
	return &MockGameRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, game
func (_m *MockGameRepository) Create(ctx context.Context, game *entity.Game) error {
	ret := _m.Called(ctx, game)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Game) error); ok {
		r0 = rf(ctx, game)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockGameRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockGameRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - game *entity.Game
func (_e *MockGameRepository_Expecter) Create(ctx interface{}, game interface{}) *MockGameRepository_Create_Call {
	return &MockGameRepository_Create_Call{Call: _e.mock.On("Create", ctx, game)}
}

func (_c *MockGameRepository_Create_Call) Run(run func(ctx context.Context, game *entity.Game)) *MockGameRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Game))
	})
	return _c
}

func (_c *MockGameRepository_Create_Call) Return(_a0 error) *MockGameRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGameRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Game) error) *MockGameRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockGameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Game, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockGameRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockGameRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockGameRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockGameRepository_FindByID_Call {
	return &MockGameRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockGameRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockGameRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockGameRepository_FindByID_Call) Return(_a0 *entity.Game, _a1 error) *MockGameRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGameRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Game, error)) *MockGameRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockGameRepository) List(ctx context.Context, filter entity.GameFilter) ([]*entity.Game, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	if rf, ok := ret.Get(0).(func(context.Context, entity.GameFilter) ([]*entity.Game, error)); ok {
		return rf(ctx, filter)
	}

	var r0 []*entity.Game
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Game)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockGameRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockGameRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - filter entity.GameFilter
func (_e *MockGameRepository_Expecter) List(ctx interface{}, filter interface{}) *MockGameRepository_List_Call {
	return &MockGameRepository_List_Call{Call: _e.mock.On("List", ctx, filter)}
}

func (_c *MockGameRepository_List_Call) Run(run func(ctx context.Context, filter entity.GameFilter)) *MockGameRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.GameFilter))
	})
	return _c
}

func (_c *MockGameRepository_List_Call) Return(_a0 []*entity.Game, _a1 error) *MockGameRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGameRepository_List_Call) RunAndReturn(run func(context.Context, entity.GameFilter) ([]*entity.Game, error)) *MockGameRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, id, patch
func (_m *MockGameRepository) Update(ctx context.Context, id uuid.UUID, patch entity.GamePatch) error {
	ret := _m.Called(ctx, id, patch)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.GamePatch) error); ok {
		r0 = rf(ctx, id, patch)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockGameRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockGameRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - patch entity.GamePatch
func (_e *MockGameRepository_Expecter) Update(ctx interface{}, id interface{}, patch interface{}) *MockGameRepository_Update_Call {
	return &MockGameRepository_Update_Call{Call: _e.mock.On("Update", ctx, id, patch)}
}

func (_c *MockGameRepository_Update_Call) Run(run func(ctx context.Context, id uuid.UUID, patch entity.GamePatch)) *MockGameRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.GamePatch))
	})
	return _c
}

func (_c *MockGameRepository_Update_Call) Return(_a0 error) *MockGameRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGameRepository_Update_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.GamePatch) error) *MockGameRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateStatus provides a mock function with given fields: ctx, id, from, to
func (_m *MockGameRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from entity.GameStatus, to entity.GameStatus) error {
	ret := _m.Called(ctx, id, from, to)

	if len(ret) == 0 {
		panic("no return value specified for UpdateStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, entity.GameStatus, entity.GameStatus) error); ok {
		r0 = rf(ctx, id, from, to)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockGameRepository_UpdateStatus_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateStatus'
type MockGameRepository_UpdateStatus_Call struct {
	*mock.Call
}

// UpdateStatus is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - from entity.GameStatus
//   - to entity.GameStatus
func (_e *MockGameRepository_Expecter) UpdateStatus(ctx interface{}, id interface{}, from interface{}, to interface{}) *MockGameRepository_UpdateStatus_Call {
	return &MockGameRepository_UpdateStatus_Call{Call: _e.mock.On("UpdateStatus", ctx, id, from, to)}
}

func (_c *MockGameRepository_UpdateStatus_Call) Run(run func(ctx context.Context, id uuid.UUID, from entity.GameStatus, to entity.GameStatus)) *MockGameRepository_UpdateStatus_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(entity.GameStatus), args[3].(entity.GameStatus))
	})
	return _c
}

func (_c *MockGameRepository_UpdateStatus_Call) Return(_a0 error) *MockGameRepository_UpdateStatus_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGameRepository_UpdateStatus_Call) RunAndReturn(run func(context.Context, uuid.UUID, entity.GameStatus, entity.GameStatus) error) *MockGameRepository_UpdateStatus_Call {
	_c.Call.Return(run)
	return _c
}

// SetFeatured provides a mock function with given fields: ctx, id, featured
func (_m *MockGameRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	ret := _m.Called(ctx, id, featured)

	if len(ret) == 0 {
		panic("no return value specified for SetFeatured")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, bool) error); ok {
		r0 = rf(ctx, id, featured)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockGameRepository_SetFeatured_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetFeatured'
type MockGameRepository_SetFeatured_Call struct {
	*mock.Call
}

// SetFeatured is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - featured bool
func (_e *MockGameRepository_Expecter) SetFeatured(ctx interface{}, id interface{}, featured interface{}) *MockGameRepository_SetFeatured_Call {
	return &MockGameRepository_SetFeatured_Call{Call: _e.mock.On("SetFeatured", ctx, id, featured)}
}

func (_c *MockGameRepository_SetFeatured_Call) Run(run func(ctx context.Context, id uuid.UUID, featured bool)) *MockGameRepository_SetFeatured_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(bool))
	})
	return _c
}

func (_c *MockGameRepository_SetFeatured_Call) Return(_a0 error) *MockGameRepository_SetFeatured_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGameRepository_SetFeatured_Call) RunAndReturn(run func(context.Context, uuid.UUID, bool) error) *MockGameRepository_SetFeatured_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockGameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockGameRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockGameRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockGameRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockGameRepository_Delete_Call {
	return &MockGameRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockGameRepository_Delete_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockGameRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockGameRepository_Delete_Call) Return(_a0 error) *MockGameRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGameRepository_Delete_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockGameRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGameRepository creates a new instance of MockGameRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGameRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGameRepository {
	m := &MockGameRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
