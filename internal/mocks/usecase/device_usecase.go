package mocks

import (
	"context"

	"blvgames/internal/domain/entity"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDeviceUsecase is a mock type for the DeviceUsecase type
type MockDeviceUsecase struct {
	mock.Mock
}

type MockDeviceUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeviceUsecase) EXPECT() *MockDeviceUsecase_Expecter {
	return &MockDeviceUsecase_Expecter{mock: &_m.Mock}
}

// RegisterDevice provides a mock function with given fields: ctx, userID, registration
func (_m *MockDeviceUsecase) RegisterDevice(ctx context.Context, userID uuid.UUID, registration *usecase.DeviceRegistration) (*entity.UserDevice, error) {
	ret := _m.Called(ctx, userID, registration)

	if len(ret) == 0 {
		panic("no return value specified for RegisterDevice")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.DeviceRegistration) (*entity.UserDevice, error)); ok {
		return rf(ctx, userID, registration)
	}

	var r0 *entity.UserDevice
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.UserDevice)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockDeviceUsecase_RegisterDevice_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RegisterDevice'
type MockDeviceUsecase_RegisterDevice_Call struct {
	*mock.Call
}

// RegisterDevice is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - registration *usecase.DeviceRegistration
func (_e *MockDeviceUsecase_Expecter) RegisterDevice(ctx interface{}, userID interface{}, registration interface{}) *MockDeviceUsecase_RegisterDevice_Call {
	return &MockDeviceUsecase_RegisterDevice_Call{Call: _e.mock.On("RegisterDevice", ctx, userID, registration)}
}

func (_c *MockDeviceUsecase_RegisterDevice_Call) Run(run func(ctx context.Context, userID uuid.UUID, registration *usecase.DeviceRegistration)) *MockDeviceUsecase_RegisterDevice_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*usecase.DeviceRegistration))
	})
	return _c
}

func (_c *MockDeviceUsecase_RegisterDevice_Call) Return(_a0 *entity.UserDevice, _a1 error) *MockDeviceUsecase_RegisterDevice_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceUsecase_RegisterDevice_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.DeviceRegistration) (*entity.UserDevice, error)) *MockDeviceUsecase_RegisterDevice_Call {
	_c.Call.Return(run)
	return _c
}

// RotateToken provides a mock function with given fields: ctx, userID, deviceID, fcmToken
func (_m *MockDeviceUsecase) RotateToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	ret := _m.Called(ctx, userID, deviceID, fcmToken)

	if len(ret) == 0 {
		panic("no return value specified for RotateToken")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, string) error); ok {
		r0 = rf(ctx, userID, deviceID, fcmToken)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceUsecase_RotateToken_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RotateToken'
type MockDeviceUsecase_RotateToken_Call struct {
	*mock.Call
}

// RotateToken is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - deviceID uuid.UUID
//   - fcmToken string
func (_e *MockDeviceUsecase_Expecter) RotateToken(ctx interface{}, userID interface{}, deviceID interface{}, fcmToken interface{}) *MockDeviceUsecase_RotateToken_Call {
	return &MockDeviceUsecase_RotateToken_Call{Call: _e.mock.On("RotateToken", ctx, userID, deviceID, fcmToken)}
}

func (_c *MockDeviceUsecase_RotateToken_Call) Run(run func(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string)) *MockDeviceUsecase_RotateToken_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID), args[3].(string))
	})
	return _c
}

func (_c *MockDeviceUsecase_RotateToken_Call) Return(_a0 error) *MockDeviceUsecase_RotateToken_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceUsecase_RotateToken_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, string) error) *MockDeviceUsecase_RotateToken_Call {
	_c.Call.Return(run)
	return _c
}

// ListDevices provides a mock function with given fields: ctx, userID
func (_m *MockDeviceUsecase) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListDevices")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*entity.UserDevice, error)); ok {
		return rf(ctx, userID)
	}

	var r0 []*entity.UserDevice
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.UserDevice)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockDeviceUsecase_ListDevices_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListDevices'
type MockDeviceUsecase_ListDevices_Call struct {
	*mock.Call
}

// ListDevices is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockDeviceUsecase_Expecter) ListDevices(ctx interface{}, userID interface{}) *MockDeviceUsecase_ListDevices_Call {
	return &MockDeviceUsecase_ListDevices_Call{Call: _e.mock.On("ListDevices", ctx, userID)}
}

func (_c *MockDeviceUsecase_ListDevices_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockDeviceUsecase_ListDevices_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockDeviceUsecase_ListDevices_Call) Return(_a0 []*entity.UserDevice, _a1 error) *MockDeviceUsecase_ListDevices_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDeviceUsecase_ListDevices_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]*entity.UserDevice, error)) *MockDeviceUsecase_ListDevices_Call {
	_c.Call.Return(run)
	return _c
}

// UnregisterDevice provides a mock function with given fields: ctx, userID, deviceID
func (_m *MockDeviceUsecase) UnregisterDevice(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error {
	ret := _m.Called(ctx, userID, deviceID)

	if len(ret) == 0 {
		panic("no return value specified for UnregisterDevice")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, userID, deviceID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceUsecase_UnregisterDevice_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UnregisterDevice'
type MockDeviceUsecase_UnregisterDevice_Call struct {
	*mock.Call
}

// UnregisterDevice is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - deviceID uuid.UUID
func (_e *MockDeviceUsecase_Expecter) UnregisterDevice(ctx interface{}, userID interface{}, deviceID interface{}) *MockDeviceUsecase_UnregisterDevice_Call {
	return &MockDeviceUsecase_UnregisterDevice_Call{Call: _e.mock.On("UnregisterDevice", ctx, userID, deviceID)}
}

func (_c *MockDeviceUsecase_UnregisterDevice_Call) Run(run func(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID)) *MockDeviceUsecase_UnregisterDevice_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockDeviceUsecase_UnregisterDevice_Call) Return(_a0 error) *MockDeviceUsecase_UnregisterDevice_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceUsecase_UnregisterDevice_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) error) *MockDeviceUsecase_UnregisterDevice_Call {
	_c.Call.Return(run)
	return _c
}

// SendTestNotification provides a mock function with given fields: ctx, userID, deviceID
func (_m *MockDeviceUsecase) SendTestNotification(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error {
	ret := _m.Called(ctx, userID, deviceID)

	if len(ret) == 0 {
		panic("no return value specified for SendTestNotification")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = rf(ctx, userID, deviceID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockDeviceUsecase_SendTestNotification_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendTestNotification'
type MockDeviceUsecase_SendTestNotification_Call struct {
	*mock.Call
}

// SendTestNotification is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
//   - deviceID uuid.UUID
func (_e *MockDeviceUsecase_Expecter) SendTestNotification(ctx interface{}, userID interface{}, deviceID interface{}) *MockDeviceUsecase_SendTestNotification_Call {
	return &MockDeviceUsecase_SendTestNotification_Call{Call: _e.mock.On("SendTestNotification", ctx, userID, deviceID)}
}

func (_c *MockDeviceUsecase_SendTestNotification_Call) Run(run func(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID)) *MockDeviceUsecase_SendTestNotification_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(uuid.UUID))
	})
	return _c
}

func (_c *MockDeviceUsecase_SendTestNotification_Call) Return(_a0 error) *MockDeviceUsecase_SendTestNotification_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockDeviceUsecase_SendTestNotification_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) error) *MockDeviceUsecase_SendTestNotification_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDeviceUsecase creates a new instance of MockDeviceUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDeviceUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeviceUsecase {
	m := &MockDeviceUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
