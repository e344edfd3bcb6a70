package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/PelusheLD/Pepito-s-House/internal/events"
	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
	"github.com/PelusheLD/Pepito-s-House/server/internal/service"
)

type ReservationRepository struct {
	mock.Mock
}

func (_m *ReservationRepository) List() ([]domain.Reservation, error) {
	ret := _m.Called()

	var r0 []domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *ReservationRepository) ListByStatus(status string) ([]domain.Reservation, error) {
	ret := _m.Called(status)

	var r0 []domain.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reservation)
	}
	return r0, ret.Error(1)
}

func (_m *ReservationRepository) GetByID(id int) (domain.Reservation, error) {
	ret := _m.Called(id)
	return ret.Get(0).(domain.Reservation), ret.Error(1)
}

func (_m *ReservationRepository) Insert(res *domain.Reservation) error {
	ret := _m.Called(res)
	return ret.Error(0)
}

func (_m *ReservationRepository) Update(res *domain.Reservation) error {
	ret := _m.Called(res)
	return ret.Error(0)
}

func (_m *ReservationRepository) Delete(id int) error {
	ret := _m.Called(id)
	return ret.Error(0)
}

func (_m *ReservationRepository) CountByDate(date string) (map[string]int, error) {
	ret := _m.Called(date)

	var r0 map[string]int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int)
	}
	return r0, ret.Error(1)
}

type ReservationPublisher struct {
	mock.Mock
}

func (_m *ReservationPublisher) PublishReservationEvent(ctx context.Context, event events.ReservationEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

type StatsReader struct {
	mock.Mock
}

func (_m *StatsReader) CountsForDate(ctx context.Context, date string) (map[string]int, error) {
	ret := _m.Called(ctx, date)

	var r0 map[string]int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int)
	}
	return r0, ret.Error(1)
}

type SiteConfigProvider struct {
	mock.Mock
}

func (_m *SiteConfigProvider) SiteConfig(ctx context.Context) service.SiteConfig {
	ret := _m.Called(ctx)
	return ret.Get(0).(service.SiteConfig)
}
