package mocks

import (
	"context"

	"blvgames/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProfileUsecase is a mock type for the ProfileUsecase type
type MockProfileUsecase struct {
	mock.Mock
}

type MockProfileUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProfileUsecase) EXPECT() *MockProfileUsecase_Expecter {
	return &MockProfileUsecase_Expecter{mock: &_m.Mock}
}

// GetProfile provides a mock function with given fields: ctx, userID
func (_m *MockProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetProfile")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.User, error)); ok {
		return rf(ctx, userID)
	}

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_GetProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProfile'
type MockProfileUsecase_GetProfile_Call struct {
	*mock.Call
}

// GetProfile is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockProfileUsecase_Expecter) GetProfile(ctx interface{}, userID interface{}) *MockProfileUsecase_GetProfile_Call {
	return &MockProfileUsecase_GetProfile_Call{Call: _e.mock.On("GetProfile", ctx, userID)}
}

func (_c *MockProfileUsecase_GetProfile_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProfileUsecase_GetProfile_Call) Return(_a0 *entity.User, _a1 error) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProfileUsecase_GetProfile_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.User, error)) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Return(run)
	return _c
}

// ListProfiles provides a mock function with given fields: ctx, filter
func (_m *MockProfileUsecase) ListProfiles(ctx context.Context, filter entity.UserFilter) ([]*entity.User, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListProfiles")
	}

	if rf, ok := ret.Get(0).(func(context.Context, entity.UserFilter) ([]*entity.User, error)); ok {
		return rf(ctx, filter)
	}

	var r0 []*entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.User)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_ListProfiles_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListProfiles'
type MockProfileUsecase_ListProfiles_Call struct {
	*mock.Call
}

// ListProfiles is a helper method to define mock.On call
//   - ctx context.Context
//   - filter entity.UserFilter
func (_e *MockProfileUsecase_Expecter) ListProfiles(ctx interface{}, filter interface{}) *MockProfileUsecase_ListProfiles_Call {
	return &MockProfileUsecase_ListProfiles_Call{Call: _e.mock.On("ListProfiles", ctx, filter)}
}

func (_c *MockProfileUsecase_ListProfiles_Call) Run(run func(ctx context.Context, filter entity.UserFilter)) *MockProfileUsecase_ListProfiles_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.UserFilter))
	})
	return _c
}

func (_c *MockProfileUsecase_ListProfiles_Call) Return(_a0 []*entity.User, _a1 error) *MockProfileUsecase_ListProfiles_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProfileUsecase_ListProfiles_Call) RunAndReturn(run func(context.Context, entity.UserFilter) ([]*entity.User, error)) *MockProfileUsecase_ListProfiles_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateProfile provides a mock function with given fields: ctx, viewer, userID, patch
func (_m *MockProfileUsecase) UpdateProfile(ctx context.Context, viewer *entity.Viewer, userID uuid.UUID, patch entity.ProfilePatch) error {
	ret := _m.Called(ctx, viewer, userID, patch)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProfile")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Viewer, uuid.UUID, entity.ProfilePatch) error); ok {
		r0 = rf(ctx, viewer, userID, patch)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProfileUsecase_UpdateProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProfile'
type MockProfileUsecase_UpdateProfile_Call struct {
	*mock.Call
}

// UpdateProfile is a helper method to define mock.On call
//   - ctx context.Context
//   - viewer *entity.Viewer
//   - userID uuid.UUID
//   - patch entity.ProfilePatch
func (_e *MockProfileUsecase_Expecter) UpdateProfile(ctx interface{}, viewer interface{}, userID interface{}, patch interface{}) *MockProfileUsecase_UpdateProfile_Call {
	return &MockProfileUsecase_UpdateProfile_Call{Call: _e.mock.On("UpdateProfile", ctx, viewer, userID, patch)}
}

func (_c *MockProfileUsecase_UpdateProfile_Call) Run(run func(ctx context.Context, viewer *entity.Viewer, userID uuid.UUID, patch entity.ProfilePatch)) *MockProfileUsecase_UpdateProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Viewer), args[2].(uuid.UUID), args[3].(entity.ProfilePatch))
	})
	return _c
}

func (_c *MockProfileUsecase_UpdateProfile_Call) Return(_a0 error) *MockProfileUsecase_UpdateProfile_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProfileUsecase_UpdateProfile_Call) RunAndReturn(run func(context.Context, *entity.Viewer, uuid.UUID, entity.ProfilePatch) error) *MockProfileUsecase_UpdateProfile_Call {
	_c.Call.Return(run)
	return _c
}

// WhatsAppQR provides a mock function with given fields: ctx, userID
func (_m *MockProfileUsecase) WhatsAppQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for WhatsAppQR")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]byte, error)); ok {
		return rf(ctx, userID)
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockProfileUsecase_WhatsAppQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WhatsAppQR'
type MockProfileUsecase_WhatsAppQR_Call struct {
	*mock.Call
}

// WhatsAppQR is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockProfileUsecase_Expecter) WhatsAppQR(ctx interface{}, userID interface{}) *MockProfileUsecase_WhatsAppQR_Call {
	return &MockProfileUsecase_WhatsAppQR_Call{Call: _e.mock.On("WhatsAppQR", ctx, userID)}
}

func (_c *MockProfileUsecase_WhatsAppQR_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockProfileUsecase_WhatsAppQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProfileUsecase_WhatsAppQR_Call) Return(_a0 []byte, _a1 error) *MockProfileUsecase_WhatsAppQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProfileUsecase_WhatsAppQR_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]byte, error)) *MockProfileUsecase_WhatsAppQR_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockProfileUsecase creates a new instance of MockProfileUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProfileUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
