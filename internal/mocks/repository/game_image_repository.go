package mocks

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGameImageRepository is a mock type for the GameImageRepository type
type MockGameImageRepository struct {
	mock.Mock
}

type MockGameImageRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGameImageRepository) EXPECT() *MockGameImageRepository_Expecter {
	return &MockGameImageRepository_Expecter{mock: &_m.Mock}
}

// CreateBatch provides a mock function with given fields: ctx, images
func (_m *MockGameImageRepository) CreateBatch(ctx context.Context, images []entity.GameImage) error {
	ret := _m.Called(ctx, images)

	if len(ret) == 0 {
		panic("no return value specified for CreateBatch")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []entity.GameImage) error); ok {
		r0 = rf(ctx, images)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockGameImageRepository_CreateBatch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateBatch'
type MockGameImageRepository_CreateBatch_Call struct {
	*mock.Call
}

// CreateBatch is a helper method to define mock.On call
//   - ctx context.Context
//   - images []entity.GameImage
func (_e *MockGameImageRepository_Expecter) CreateBatch(ctx interface{}, images interface{}) *MockGameImageRepository_CreateBatch_Call {
	return &MockGameImageRepository_CreateBatch_Call{Call: _e.mock.On("CreateBatch", ctx, images)}
}

func (_c *MockGameImageRepository_CreateBatch_Call) Run(run func(ctx context.Context, images []entity.GameImage)) *MockGameImageRepository_CreateBatch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]entity.GameImage))
	})
	return _c
}

func (_c *MockGameImageRepository_CreateBatch_Call) Return(_a0 error) *MockGameImageRepository_CreateBatch_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGameImageRepository_CreateBatch_Call) RunAndReturn(run func(context.Context, []entity.GameImage) error) *MockGameImageRepository_CreateBatch_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteByGameID provides a mock function with given fields: ctx, gameID
func (_m *MockGameImageRepository) DeleteByGameID(ctx context.Context, gameID uuid.UUID) error {
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

// MockGameImageRepository_DeleteByGameID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteByGameID'
type MockGameImageRepository_DeleteByGameID_Call struct {
	*mock.Call
}

// DeleteByGameID is a helper method to define mock.On call
//   - ctx context.Context
//   - gameID uuid.UUID
func (_e *MockGameImageRepository_Expecter) DeleteByGameID(ctx interface{}, gameID interface{}) *MockGameImageRepository_DeleteByGameID_Call {
	return &MockGameImageRepository_DeleteByGameID_Call{Call: _e.mock.On("DeleteByGameID", ctx, gameID)}
}

func (_c *MockGameImageRepository_DeleteByGameID_Call) Run(run func(ctx context.Context, gameID uuid.UUID)) *MockGameImageRepository_DeleteByGameID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockGameImageRepository_DeleteByGameID_Call) Return(_a0 error) *MockGameImageRepository_DeleteByGameID_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockGameImageRepository_DeleteByGameID_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockGameImageRepository_DeleteByGameID_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGameImageRepository creates a new instance of MockGameImageRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGameImageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGameImageRepository {
	m := &MockGameImageRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
