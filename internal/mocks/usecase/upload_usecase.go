package mocks

import (
	"context"
	"io"

	"blvgames/internal/domain/service"
	"blvgames/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUploadUsecase is a mock type for the UploadUsecase type
type MockUploadUsecase struct {
	mock.Mock
}

type MockUploadUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUploadUsecase) EXPECT() *MockUploadUsecase_Expecter {
	return &MockUploadUsecase_Expecter{mock: &_m.Mock}
}

// UploadImage provides a mock function with given fields: ctx, input
func (_m *MockUploadUsecase) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*service.StoredObject, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for UploadImage")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *usecase.UploadImageInput) (*service.StoredObject, error)); ok {
		return rf(ctx, input)
	}

	var r0 *service.StoredObject
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.StoredObject)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockUploadUsecase_UploadImage_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UploadImage'
type MockUploadUsecase_UploadImage_Call struct {
	*mock.Call
}

// UploadImage is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.UploadImageInput
func (_e *MockUploadUsecase_Expecter) UploadImage(ctx interface{}, input interface{}) *MockUploadUsecase_UploadImage_Call {
	return &MockUploadUsecase_UploadImage_Call{Call: _e.mock.On("UploadImage", ctx, input)}
}

func (_c *MockUploadUsecase_UploadImage_Call) Run(run func(ctx context.Context, input *usecase.UploadImageInput)) *MockUploadUsecase_UploadImage_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.UploadImageInput))
	})
	return _c
}

func (_c *MockUploadUsecase_UploadImage_Call) Return(_a0 *service.StoredObject, _a1 error) *MockUploadUsecase_UploadImage_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUploadUsecase_UploadImage_Call) RunAndReturn(run func(context.Context, *usecase.UploadImageInput) (*service.StoredObject, error)) *MockUploadUsecase_UploadImage_Call {
	_c.Call.Return(run)
	return _c
}

// OpenImage provides a mock function with given fields: ctx, key
func (_m *MockUploadUsecase) OpenImage(ctx context.Context, key string) (io.ReadCloser, *service.StoredObject, error) {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for OpenImage")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (io.ReadCloser, *service.StoredObject, error)); ok {
		return rf(ctx, key)
	}

	var r0 io.ReadCloser
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(io.ReadCloser)
	}

	var r1 *service.StoredObject
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*service.StoredObject)
	}

	var r2 error
	r2 = ret.Error(2)

	return r0, r1, r2
}

// MockUploadUsecase_OpenImage_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'OpenImage'
type MockUploadUsecase_OpenImage_Call struct {
	*mock.Call
}

// OpenImage is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
func (_e *MockUploadUsecase_Expecter) OpenImage(ctx interface{}, key interface{}) *MockUploadUsecase_OpenImage_Call {
	return &MockUploadUsecase_OpenImage_Call{Call: _e.mock.On("OpenImage", ctx, key)}
}

func (_c *MockUploadUsecase_OpenImage_Call) Run(run func(ctx context.Context, key string)) *MockUploadUsecase_OpenImage_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockUploadUsecase_OpenImage_Call) Return(_a0 io.ReadCloser, _a1 *service.StoredObject, _a2 error) *MockUploadUsecase_OpenImage_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockUploadUsecase_OpenImage_Call) RunAndReturn(run func(context.Context, string) (io.ReadCloser, *service.StoredObject, error)) *MockUploadUsecase_OpenImage_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUploadUsecase creates a new instance of MockUploadUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUploadUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUploadUsecase {
	m := &MockUploadUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
