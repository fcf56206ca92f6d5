package stream

import (
	"reflect"

	"github.com/golang/mock/gomock"
)

// MockIntIterator is a mock of Iterator[int].
type MockIntIterator struct {
	ctrl     *gomock.Controller
	recorder *MockIntIteratorMockRecorder
}

// MockIntIteratorMockRecorder is the mock recorder for MockIntIterator.
type MockIntIteratorMockRecorder struct {
	mock *MockIntIterator
}

// NewMockIntIterator creates a new mock instance.
func NewMockIntIterator(ctrl *gomock.Controller) *MockIntIterator {
	mock := &MockIntIterator{ctrl: ctrl}
	mock.recorder = &MockIntIteratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIntIterator) EXPECT() *MockIntIteratorMockRecorder {
	return m.recorder
}

// EstimateRemaining mocks base method.
func (m *MockIntIterator) EstimateRemaining() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EstimateRemaining")
	ret0, _ := ret[0].(int)
	return ret0
}

// EstimateRemaining indicates an expected call of EstimateRemaining.
func (mr *MockIntIteratorMockRecorder) EstimateRemaining() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EstimateRemaining", reflect.TypeOf((*MockIntIterator)(nil).EstimateRemaining))
}

// HasNext mocks base method.
func (m *MockIntIterator) HasNext() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasNext")
	ret0, _ := ret[0].(bool)
	return ret0
}

// HasNext indicates an expected call of HasNext.
func (mr *MockIntIteratorMockRecorder) HasNext() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasNext", reflect.TypeOf((*MockIntIterator)(nil).HasNext))
}

// Next mocks base method.
func (m *MockIntIterator) Next() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(int)
	return ret0
}

// Next indicates an expected call of Next.
func (mr *MockIntIteratorMockRecorder) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockIntIterator)(nil).Next))
}
