package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) ListAvailable() ([]domain.MenuItem, error) {
	ret := _m.Called()

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) ListAll() ([]domain.MenuItem, error) {
	ret := _m.Called()

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) ListFeatured() ([]domain.MenuItem, error) {
	ret := _m.Called()

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) ListByCategory(categoryID int) ([]domain.MenuItem, error) {
	ret := _m.Called(categoryID)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetByID(id int) (domain.MenuItem, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.MenuItem), ret.Error(1)
}

func (_m *MenuRepository) Insert(item *domain.MenuItem) error {
	ret := _m.Called(item)
	return ret.Error(0)
}

func (_m *MenuRepository) Update(item *domain.MenuItem) error {
	ret := _m.Called(item)
	return ret.Error(0)
}

func (_m *MenuRepository) Delete(id int) error {
	ret := _m.Called(id)
	return ret.Error(0)
}

type CategoryRepository struct {
	mock.Mock
}

func (_m *CategoryRepository) List() ([]domain.Category, error) {
	ret := _m.Called()

	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategoryRepository) GetByID(id int) (domain.Category, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.Category), ret.Error(1)
}

func (_m *CategoryRepository) GetBySlug(slug string) (domain.Category, error) {
	ret := _m.Called(slug)
	return ret.Get(0).(domain.Category), ret.Error(1)
}

func (_m *CategoryRepository) Insert(c *domain.Category) error {
	ret := _m.Called(c)
	return ret.Error(0)
}

func (_m *CategoryRepository) Update(c *domain.Category) error {
	ret := _m.Called(c)
	return ret.Error(0)
}

func (_m *CategoryRepository) Delete(id int) error {
	ret := _m.Called(id)
	return ret.Error(0)
}
