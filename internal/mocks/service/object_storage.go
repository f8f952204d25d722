package mocks

import (
	"context"
	"io"

	"blvgames/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockObjectStorage is a mock type for the ObjectStorage type
type MockObjectStorage struct {
	mock.Mock
}

type MockObjectStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockObjectStorage) EXPECT() *MockObjectStorage_Expecter {
	return &MockObjectStorage_Expecter{mock: &_m.Mock}
}

// Put provides a mock function with given fields: ctx, key, r, size, contentType, metadata
func (_m *MockObjectStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string) (*service.StoredObject, error) {
	ret := _m.Called(ctx, key, r, size, contentType, metadata)

	if len(ret) == 0 {
		panic("no return value specified for Put")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader, int64, string, map[string]string) (*service.StoredObject, error)); ok {
		return rf(ctx, key, r, size, contentType, metadata)
	}

	var r0 *service.StoredObject
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.StoredObject)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockObjectStorage_Put_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Put'
type MockObjectStorage_Put_Call struct {
	*mock.Call
}

// Put is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
//   - r io.Reader
//   - size int64
//   - contentType string
//   - metadata map[string]string
func (_e *MockObjectStorage_Expecter) Put(ctx interface{}, key interface{}, r interface{}, size interface{}, contentType interface{}, metadata interface{}) *MockObjectStorage_Put_Call {
	return &MockObjectStorage_Put_Call{Call: _e.mock.On("Put", ctx, key, r, size, contentType, metadata)}
}

func (_c *MockObjectStorage_Put_Call) Run(run func(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string)) *MockObjectStorage_Put_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(io.Reader), args[3].(int64), args[4].(string), args[5].(map[string]string))
	})
	return _c
}

func (_c *MockObjectStorage_Put_Call) Return(_a0 *service.StoredObject, _a1 error) *MockObjectStorage_Put_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockObjectStorage_Put_Call) RunAndReturn(run func(context.Context, string, io.Reader, int64, string, map[string]string) (*service.StoredObject, error)) *MockObjectStorage_Put_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function with given fields: ctx, key
func (_m *MockObjectStorage) Get(ctx context.Context, key string) (io.ReadCloser, *service.StoredObject, error) {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Get")
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

// MockObjectStorage_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockObjectStorage_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
func (_e *MockObjectStorage_Expecter) Get(ctx interface{}, key interface{}) *MockObjectStorage_Get_Call {
	return &MockObjectStorage_Get_Call{Call: _e.mock.On("Get", ctx, key)}
}

func (_c *MockObjectStorage_Get_Call) Run(run func(ctx context.Context, key string)) *MockObjectStorage_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockObjectStorage_Get_Call) Return(_a0 io.ReadCloser, _a1 *service.StoredObject, _a2 error) *MockObjectStorage_Get_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockObjectStorage_Get_Call) RunAndReturn(run func(context.Context, string) (io.ReadCloser, *service.StoredObject, error)) *MockObjectStorage_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, key
func (_m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockObjectStorage_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockObjectStorage_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - key string
func (_e *MockObjectStorage_Expecter) Delete(ctx interface{}, key interface{}) *MockObjectStorage_Delete_Call {
	return &MockObjectStorage_Delete_Call{Call: _e.mock.On("Delete", ctx, key)}
}

func (_c *MockObjectStorage_Delete_Call) Run(run func(ctx context.Context, key string)) *MockObjectStorage_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockObjectStorage_Delete_Call) Return(_a0 error) *MockObjectStorage_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockObjectStorage_Delete_Call) RunAndReturn(run func(context.Context, string) error) *MockObjectStorage_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// Close provides a mock function with given fields
func (_m *MockObjectStorage) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockObjectStorage_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'
type MockObjectStorage_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockObjectStorage_Expecter) Close() *MockObjectStorage_Close_Call {
	return &MockObjectStorage_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockObjectStorage_Close_Call) Run(run func()) *MockObjectStorage_Close_Call {
	_c.Call.Run(func(mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockObjectStorage_Close_Call) Return(_a0 error) *MockObjectStorage_Close_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockObjectStorage_Close_Call) RunAndReturn(run func() error) *MockObjectStorage_Close_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockObjectStorage creates a new instance of MockObjectStorage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockObjectStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockObjectStorage {
	m := &MockObjectStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
