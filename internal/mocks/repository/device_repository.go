package mocks

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDeviceRepository is a mock type for the DeviceRepository type
type MockDeviceRepository struct {
	mock.Mock
}

type MockDeviceRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceRepository) EXPECT() *MockDeviceRepository_Expecter {
	return &MockDeviceRepository_Expecter{mock: &_m.Mock}
}

// Upsert provides a mock function with given fields: ctx, device
func (_m *MockDeviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	ret := _m.Called(ctx, device)

	if len(ret) == 0 {
		panic("no return value specified for Upsert")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.UserDevice) error); ok {
		r0 = rf(ctx, device)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceRepository_Upsert_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Upsert'
type MockDeviceRepository_Upsert_Call struct {
	*mock.Call
}

// Upsert is a helper method to define mock.On call
//   - ctx context.Context
//   - device *entity.UserDevice
func (_e *MockDeviceRepository_Expecter) Upsert(ctx interface{}, device interface{}) *MockDeviceRepository_Upsert_Call {
	return &MockDeviceRepository_Upsert_Call{Call: _e.mock.On("Upsert", ctx, device)}
}

func (_c *MockDeviceRepository_Upsert_Call) Run(run func(ctx context.Context, device *entity.UserDevice)) *MockDeviceRepository_Upsert_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.UserDevice))
	})
	return _c
}

func (_c *MockDeviceRepository_Upsert_Call) Return(_a0 error) *MockDeviceRepository_Upsert_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceRepository_Upsert_Call) RunAndReturn(run func(context.Context, *entity.UserDevice) error) *MockDeviceRepository_Upsert_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockDeviceRepository) Get(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.UserDevice, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.UserDevice
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.UserDevice)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockDeviceRepository_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockDeviceRepository_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockDeviceRepository_Expecter) Get(ctx interface{}, id interface{}) *MockDeviceRepository_Get_Call {
	return &MockDeviceRepository_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockDeviceRepository_Get_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockDeviceRepository_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockDeviceRepository_Get_Call) Return(_a0 *entity.UserDevice, _a1 error) *MockDeviceRepository_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceRepository_Get_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.UserDevice, error)) *MockDeviceRepository_Get_Call {
	_c.Call.Return(run)
	return _c
}

// ListByUser provides a mock function with given fields: ctx, userID, activeOnly
func (_m *MockDeviceRepository) ListByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error) {
	ret := _m.Called(ctx, userID, activeOnly)

	if len(ret) == 0 {
		panic("no return value specified for ListByUser")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, bool) ([]*entity.UserDevice, error)); ok {
		return rf(ctx, userID, activeOnly)
	}

	var r0 []*entity.UserDevice
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.UserDevice)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockDeviceRepository_ListByUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByUser'
type MockDeviceRepository_ListByUser_Call struct {
	*mock.Call
}

// ListByUser is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - activeOnly bool
func (_e *MockDeviceRepository_Expecter) ListByUser(ctx interface{}, userID interface{}, activeOnly interface{}) *MockDeviceRepository_ListByUser_Call {
	return &MockDeviceRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID, activeOnly)}
}

func (_c *MockDeviceRepository_ListByUser_Call) Run(run func(ctx context.Context, userID uuid.UUID, activeOnly bool)) *MockDeviceRepository_ListByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(bool))
	})
	return _c
}

func (_c *MockDeviceRepository_ListByUser_Call) Return(_a0 []*entity.UserDevice, _a1 error) *MockDeviceRepository_ListByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceRepository_ListByUser_Call) RunAndReturn(run func(context.Context, uuid.UUID, bool) ([]*entity.UserDevice, error)) *MockDeviceRepository_ListByUser_Call {
	_c.Call.Return(run)
	return _c
}

// SetToken provides a mock function with given fields: ctx, id, fcmToken
func (_m *MockDeviceRepository) SetToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	ret := _m.Called(ctx, id, fcmToken)

	if len(ret) == 0 {
		panic("no return value specified for SetToken")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, string) error); ok {
		r0 = rf(ctx, id, fcmToken)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceRepository_SetToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetToken'
type MockDeviceRepository_SetToken_Call struct {
	*mock.Call
}

// SetToken is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - fcmToken string
func (_e *MockDeviceRepository_Expecter) SetToken(ctx interface{}, id interface{}, fcmToken interface{}) *MockDeviceRepository_SetToken_Call {
	return &MockDeviceRepository_SetToken_Call{Call: _e.mock.On("SetToken", ctx, id, fcmToken)}
}

func (_c *MockDeviceRepository_SetToken_Call) Run(run func(ctx context.Context, id uuid.UUID, fcmToken string)) *MockDeviceRepository_SetToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(string))
	})
	return _c
}

func (_c *MockDeviceRepository_SetToken_Call) Return(_a0 error) *MockDeviceRepository_SetToken_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceRepository_SetToken_Call) RunAndReturn(run func(context.Context, uuid.UUID, string) error) *MockDeviceRepository_SetToken_Call {
	_c.Call.Return(run)
	return _c
}

// Deactivate provides a mock function with given fields: ctx, id
func (_m *MockDeviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Deactivate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceRepository_Deactivate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Deactivate'
type MockDeviceRepository_Deactivate_Call struct {
	*mock.Call
}

// Deactivate is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockDeviceRepository_Expecter) Deactivate(ctx interface{}, id interface{}) *MockDeviceRepository_Deactivate_Call {
	return &MockDeviceRepository_Deactivate_Call{Call: _e.mock.On("Deactivate", ctx, id)}
}

func (_c *MockDeviceRepository_Deactivate_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockDeviceRepository_Deactivate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockDeviceRepository_Deactivate_Call) Return(_a0 error) *MockDeviceRepository_Deactivate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceRepository_Deactivate_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockDeviceRepository_Deactivate_Call {
	_c.Call.Return(run)
	return _c
}

// DeactivateTokens provides a mock function with given fields: ctx, fcmTokens
func (_m *MockDeviceRepository) DeactivateTokens(ctx context.Context, fcmTokens []string) (int64, error) {
	ret := _m.Called(ctx, fcmTokens)

	if len(ret) == 0 {
		panic("no return value specified for DeactivateTokens")
	}

	if rf, ok := ret.Get(0).(func(context.Context, []string) (int64, error)); ok {
		return rf(ctx, fcmTokens)
	}

	var r0 int64
	r0 = ret.Get(0).(int64)

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockDeviceRepository_DeactivateTokens_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeactivateTokens'
type MockDeviceRepository_DeactivateTokens_Call struct {
	*mock.Call
}

// DeactivateTokens is a helper method to define mock.On call
//   - ctx context.Context
//   - fcmTokens []string
func (_e *MockDeviceRepository_Expecter) DeactivateTokens(ctx interface{}, fcmTokens interface{}) *MockDeviceRepository_DeactivateTokens_Call {
	return &MockDeviceRepository_DeactivateTokens_Call{Call: _e.mock.On("DeactivateTokens", ctx, fcmTokens)}
}

func (_c *MockDeviceRepository_DeactivateTokens_Call) Run(run func(ctx context.Context, fcmTokens []string)) *MockDeviceRepository_DeactivateTokens_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]string))
	})
	return _c
}

func (_c *MockDeviceRepository_DeactivateTokens_Call) Return(_a0 int64, _a1 error) *MockDeviceRepository_DeactivateTokens_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceRepository_DeactivateTokens_Call) RunAndReturn(run func(context.Context, []string) (int64, error)) *MockDeviceRepository_DeactivateTokens_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDeviceRepository creates a new instance of MockDeviceRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDeviceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceRepository {
	m := &MockDeviceRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
