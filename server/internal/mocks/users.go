package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) List() ([]domain.User, error) {
	ret := _m.Called()

	var r0 []domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) GetByID(id int) (domain.User, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (_m *UserRepository) GetByUsername(username string) (domain.User, error) {
	ret := _m.Called(username)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (_m *UserRepository) Insert(u *domain.User) error {
	ret := _m.Called(u)
	return ret.Error(0)
}

func (_m *UserRepository) UpdatePassword(id int, hashed string, isFirstLogin bool) error {
	ret := _m.Called(id, hashed, isFirstLogin)
	return ret.Error(0)
}

func (_m *UserRepository) Delete(id int) error {
	ret := _m.Called(id)
	return ret.Error(0)
}
