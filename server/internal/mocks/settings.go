package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type SettingsRepository struct {
	mock.Mock
}

func (_m *SettingsRepository) List() ([]domain.Setting, error) {
	ret := _m.Called()

	var r0 []domain.Setting
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Setting)
	}
	return r0, ret.Error(1)
}

func (_m *SettingsRepository) Get(key string) (domain.Setting, error) {
	ret := _m.Called(key)
	return ret.Get(0).(domain.Setting), ret.Error(1)
}

func (_m *SettingsRepository) Upsert(key, value string) (domain.Setting, error) {
	ret := _m.Called(key, value)
	return ret.Get(0).(domain.Setting), ret.Error(1)
}

type LocationRepository struct {
	mock.Mock
}

func (_m *LocationRepository) Get() (domain.Location, error) {
	ret := _m.Called()
	return ret.Get(0).(domain.Location), ret.Error(1)
}

func (_m *LocationRepository) Insert(loc *domain.Location) error {
	ret := _m.Called(loc)
	return ret.Error(0)
}

func (_m *LocationRepository) Update(loc *domain.Location) error {
	ret := _m.Called(loc)
	return ret.Error(0)
}

type LocationCache struct {
	mock.Mock
}

func (_m *LocationCache) Get(ctx context.Context) (domain.Location, bool) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.Location), ret.Bool(1)
}

func (_m *LocationCache) Set(ctx context.Context, loc domain.Location) error {
	ret := _m.Called(ctx, loc)
	return ret.Error(0)
}

func (_m *LocationCache) Invalidate(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
