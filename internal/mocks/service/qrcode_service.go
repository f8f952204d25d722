package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock type for the QRCodeService type
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

// GenerateWhatsAppQR provides a mock function with given fields: phone
func (_m *MockQRCodeService) GenerateWhatsAppQR(phone string) ([]byte, error) {
	ret := _m.Called(phone)

	if len(ret) == 0 {
		panic("no return value specified for GenerateWhatsAppQR")
	}

	if rf, ok := ret.Get(0).(func(string) ([]byte, error)); ok {
		return rf(phone)
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockQRCodeService_GenerateWhatsAppQR_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateWhatsAppQR'
type MockQRCodeService_GenerateWhatsAppQR_Call struct {
	*mock.Call
}

// GenerateWhatsAppQR is a helper method to define mock.On call
//   - phone string
func (_e *MockQRCodeService_Expecter) GenerateWhatsAppQR(phone interface{}) *MockQRCodeService_GenerateWhatsAppQR_Call {
	return &MockQRCodeService_GenerateWhatsAppQR_Call{Call: _e.mock.On("GenerateWhatsAppQR", phone)}
}

func (_c *MockQRCodeService_GenerateWhatsAppQR_Call) Run(run func(phone string)) *MockQRCodeService_GenerateWhatsAppQR_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockQRCodeService_GenerateWhatsAppQR_Call) Return(_a0 []byte, _a1 error) *MockQRCodeService_GenerateWhatsAppQR_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_GenerateWhatsAppQR_Call) RunAndReturn(run func(string) ([]byte, error)) *MockQRCodeService_GenerateWhatsAppQR_Call {
	_c.Call.Return(run)
	return _c
}

// WhatsAppLink provides a mock function with given fields: phone
func (_m *MockQRCodeService) WhatsAppLink(phone string) (string, error) {
	ret := _m.Called(phone)

	if len(ret) == 0 {
		panic("no return value specified for WhatsAppLink")
	}

	if rf, ok := ret.Get(0).(func(string) (string, error)); ok {
		return rf(phone)
	}

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	r1 = ret.Error(1)

	return r0, r1
}

// MockQRCodeService_WhatsAppLink_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WhatsAppLink'
type MockQRCodeService_WhatsAppLink_Call struct {
	*mock.Call
}

// WhatsAppLink is a helper method to define mock.On call
//   - phone string
func (_e *MockQRCodeService_Expecter) WhatsAppLink(phone interface{}) *MockQRCodeService_WhatsAppLink_Call {
	return &MockQRCodeService_WhatsAppLink_Call{Call: _e.mock.On("WhatsAppLink", phone)}
}

func (_c *MockQRCodeService_WhatsAppLink_Call) Run(run func(phone string)) *MockQRCodeService_WhatsAppLink_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockQRCodeService_WhatsAppLink_Call) Return(_a0 string, _a1 error) *MockQRCodeService_WhatsAppLink_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockQRCodeService_WhatsAppLink_Call) RunAndReturn(run func(string) (string, error)) *MockQRCodeService_WhatsAppLink_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
