package mocks

import "github.com/stretchr/testify/mock"

type CounterStore struct {
	mock.Mock
}

func (_m *CounterStore) RecordCreated(date, status string) error {
	ret := _m.Called(date, status)
	return ret.Error(0)
}

func (_m *CounterStore) RecordStatusChange(date, status, prevStatus string) error {
	ret := _m.Called(date, status, prevStatus)
	return ret.Error(0)
}
