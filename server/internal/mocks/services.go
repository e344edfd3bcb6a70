package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
	"github.com/PelusheLD/Pepito-s-House/server/internal/service"
)

type MenuServiceInterface struct {
	mock.Mock
}

func (_m *MenuServiceInterface) ListItems(includeUnavailable bool) ([]domain.MenuItem, error) {
	ret := _m.Called(includeUnavailable)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) ListFeatured() ([]domain.MenuItem, error) {
	ret := _m.Called()

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) ListByCategory(categoryID int) ([]domain.MenuItem, error) {
	ret := _m.Called(categoryID)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) GetItem(id int) (domain.MenuItem, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.MenuItem), ret.Error(1)
}

func (_m *MenuServiceInterface) CreateItem(input domain.MenuItemInput) (domain.MenuItem, error) {
	ret := _m.Called(input)
	return ret.Get(0).(domain.MenuItem), ret.Error(1)
}

func (_m *MenuServiceInterface) UpdateItem(id int, update domain.MenuItemUpdate) (domain.MenuItem, error) {
	ret := _m.Called(id, update)
	return ret.Get(0).(domain.MenuItem), ret.Error(1)
}

func (_m *MenuServiceInterface) DeleteItem(id int) error {
	ret := _m.Called(id)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) ListCategories() ([]domain.Category, error) {
	ret := _m.Called()

	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) GetCategory(id int) (domain.Category, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.Category), ret.Error(1)
}

func (_m *MenuServiceInterface) CreateCategory(input domain.CategoryInput) (domain.Category, error) {
	ret := _m.Called(input)
	return ret.Get(0).(domain.Category), ret.Error(1)
}

func (_m *MenuServiceInterface) UpdateCategory(id int, update domain.CategoryUpdate) (domain.Category, error) {
	ret := _m.Called(id, update)
	return ret.Get(0).(domain.Category), ret.Error(1)
}

func (_m *MenuServiceInterface) DeleteCategory(id int) error {
	ret := _m.Called(id)
	return ret.Error(0)
}

type ReservationServiceInterface struct {
	mock.Mock
}

func (_m *ReservationServiceInterface) Create(ctx context.Context, input domain.ReservationInput) (domain.Reservation, error) {
	ret := _m.Called(ctx, input)
	return ret.Get(0).(domain.Reservation), ret.Error(1)
}

func (_m *ReservationServiceInterface) List() ([]domain.Reservation, error) {
	ret := _m.Called()

	var r0 []domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *ReservationServiceInterface) ListByStatus(status string) ([]domain.Reservation, error) {
	ret := _m.Called(status)

	var r0 []domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *ReservationServiceInterface) Get(id int) (domain.Reservation, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.Reservation), ret.Error(1)
}

func (_m *ReservationServiceInterface) Update(ctx context.Context, id int, update domain.ReservationUpdate) (domain.Reservation, error) {
	ret := _m.Called(ctx, id, update)
	return ret.Get(0).(domain.Reservation), ret.Error(1)
}

func (_m *ReservationServiceInterface) Delete(id int) error {
	ret := _m.Called(id)
	return ret.Error(0)
}

func (_m *ReservationServiceInterface) ComposeNotification(ctx context.Context, id int, status string) (service.Notification, error) {
	ret := _m.Called(ctx, id, status)
	return ret.Get(0).(service.Notification), ret.Error(1)
}

func (_m *ReservationServiceInterface) StatsForDate(ctx context.Context, date string) (domain.DayStats, error) {
	ret := _m.Called(ctx, date)
	return ret.Get(0).(domain.DayStats), ret.Error(1)
}
