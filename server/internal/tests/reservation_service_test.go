package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PelusheLD/Pepito-s-House/internal/events"
	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
	"github.com/PelusheLD/Pepito-s-House/server/internal/mocks"
	"github.com/PelusheLD/Pepito-s-House/server/internal/service"
)

func validReservationInput() domain.ReservationInput {
	return domain.ReservationInput{
		Name:   "Maria Perez",
		Email:  "maria@example.com",
		Phone:  "04141234567",
		Date:   "2026-10-15",
		Time:   "20:00",
		Guests: 4,
	}
}

func newReservationService(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher,
	stats *mocks.StatsReader, settings *mocks.SiteConfigProvider) *service.ReservationService {
	return service.NewReservationService(repo, publisher, stats, settings, "58")
}

func TestReservationService_Create(t *testing.T) {
	tests := []struct {
		name         string
		input        func() domain.ReservationInput
		prepareMocks func(*mocks.ReservationRepository, *mocks.ReservationPublisher)
		wantErr      error
		wantDate     string
	}{
		{
			name:  "valid input starts pending",
			input: validReservationInput,
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {
				repo.On("Insert", mock.AnythingOfType("*domain.Reservation")).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Reservation).ID = 7
				}).Return(nil).Once()
				publisher.On("PublishReservationEvent", mock.Anything, mock.MatchedBy(func(event events.ReservationEvent) bool {
					return event.Type == events.TypeReservationCreated && event.ReservationID == 7 && event.Status == domain.StatusPending
				})).Return(nil).Once()
			},
			wantDate: "2026-10-15",
		},
		{
			name: "client-sent status is ignored",
			input: func() domain.ReservationInput {
				input := validReservationInput()
				input.Status = "confirmed"
				return input
			},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {
				repo.On("Insert", mock.MatchedBy(func(res *domain.Reservation) bool {
					return res.Status == domain.StatusPending
				})).Return(nil).Once()
				publisher.On("PublishReservationEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantDate: "2026-10-15",
		},
		{
			name: "legacy date format is normalized",
			input: func() domain.ReservationInput {
				input := validReservationInput()
				input.Date = "15/10/2026"
				return input
			},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {
				repo.On("Insert", mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
				publisher.On("PublishReservationEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantDate: "2026-10-15",
		},
		{
			name: "too many guests",
			input: func() domain.ReservationInput {
				input := validReservationInput()
				input.Guests = 25
				return input
			},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {},
			wantErr:      service.ErrInvalidInput,
		},
		{
			name: "short name",
			input: func() domain.ReservationInput {
				input := validReservationInput()
				input.Name = "Al"
				return input
			},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {},
			wantErr:      service.ErrInvalidInput,
		},
		{
			name: "time outside service windows",
			input: func() domain.ReservationInput {
				input := validReservationInput()
				input.Time = "16:00"
				return input
			},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {},
			wantErr:      service.ErrInvalidInput,
		},
		{
			name: "unparseable date",
			input: func() domain.ReservationInput {
				input := validReservationInput()
				input.Date = "next friday"
				return input
			},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {},
			wantErr:      service.ErrInvalidInput,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := new(mocks.ReservationRepository)
			publisher := new(mocks.ReservationPublisher)
			testCase.prepareMocks(repo, publisher)

			svc := newReservationService(repo, publisher, new(mocks.StatsReader), new(mocks.SiteConfigProvider))

			res, err := svc.Create(context.Background(), testCase.input())

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.StatusPending, res.Status)
				assert.Equal(t, testCase.wantDate, res.Date)
			}
			repo.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}

func TestReservationService_Update(t *testing.T) {
	stored := domain.Reservation{
		ID: 3, Name: "Maria Perez", Email: "maria@example.com", Phone: "04141234567",
		Date: "2026-10-15", Time: "20:00", Guests: 4, Status: domain.StatusPending,
	}

	strPtr := func(s string) *string { return &s }
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name         string
		update       domain.ReservationUpdate
		prepareMocks func(*mocks.ReservationRepository, *mocks.ReservationPublisher)
		wantErr      error
		wantStatus   string
		wantGuests   int
	}{
		{
			name:   "status change publishes event with previous status",
			update: domain.ReservationUpdate{Status: strPtr(domain.StatusConfirmed)},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {
				repo.On("GetByID", 3).Return(stored, nil).Once()
				repo.On("Update", mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
				publisher.On("PublishReservationEvent", mock.Anything, mock.MatchedBy(func(event events.ReservationEvent) bool {
					return event.Type == events.TypeStatusChanged &&
						event.Status == domain.StatusConfirmed &&
						event.PrevStatus == domain.StatusPending
				})).Return(nil).Once()
			},
			wantStatus: domain.StatusConfirmed,
			wantGuests: 4,
		},
		{
			name:   "field edit without status change publishes nothing",
			update: domain.ReservationUpdate{Guests: intPtr(6)},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {
				repo.On("GetByID", 3).Return(stored, nil).Once()
				repo.On("Update", mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
			},
			wantStatus: domain.StatusPending,
			wantGuests: 6,
		},
		{
			name:   "cancelled to confirmed is allowed",
			update: domain.ReservationUpdate{Status: strPtr(domain.StatusConfirmed)},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {
				cancelled := stored
				cancelled.Status = domain.StatusCancelled
				repo.On("GetByID", 3).Return(cancelled, nil).Once()
				repo.On("Update", mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
				publisher.On("PublishReservationEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: domain.StatusConfirmed,
			wantGuests: 4,
		},
		{
			name:   "unknown status value is rejected",
			update: domain.ReservationUpdate{Status: strPtr("archived")},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {
				repo.On("GetByID", 3).Return(stored, nil).Once()
			},
			wantErr: service.ErrInvalidStatus,
		},
		{
			name:   "missing reservation",
			update: domain.ReservationUpdate{Guests: intPtr(2)},
			prepareMocks: func(repo *mocks.ReservationRepository, publisher *mocks.ReservationPublisher) {
				repo.On("GetByID", 3).Return(domain.Reservation{}, sql.ErrNoRows).Once()
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := new(mocks.ReservationRepository)
			publisher := new(mocks.ReservationPublisher)
			testCase.prepareMocks(repo, publisher)

			svc := newReservationService(repo, publisher, new(mocks.StatsReader), new(mocks.SiteConfigProvider))

			res, err := svc.Update(context.Background(), 3, testCase.update)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.wantStatus, res.Status)
				assert.Equal(t, testCase.wantGuests, res.Guests)
			}
			repo.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}

func TestReservationService_ComposeNotification(t *testing.T) {
	stored := domain.Reservation{
		ID: 3, Name: "Maria", Phone: "414-123-4567",
		Date: "2026-10-15", Time: "20:00", Guests: 4, Status: domain.StatusConfirmed,
	}

	tests := []struct {
		name         string
		status       string
		prepareMocks func(*mocks.ReservationRepository, *mocks.SiteConfigProvider)
		wantErr      error
		wantContains string
	}{
		{
			name:   "confirmed message",
			status: domain.StatusConfirmed,
			prepareMocks: func(repo *mocks.ReservationRepository, settings *mocks.SiteConfigProvider) {
				repo.On("GetByID", 3).Return(stored, nil).Once()
				settings.On("SiteConfig", mock.Anything).Return(service.SiteConfig{RestaurantName: "Pepito's House"}).Once()
			},
			wantContains: "tu reserva en Pepito's House ha sido confirmada",
		},
		{
			name:   "cancelled message",
			status: domain.StatusCancelled,
			prepareMocks: func(repo *mocks.ReservationRepository, settings *mocks.SiteConfigProvider) {
				repo.On("GetByID", 3).Return(stored, nil).Once()
				settings.On("SiteConfig", mock.Anything).Return(service.SiteConfig{RestaurantName: "Pepito's House"}).Once()
			},
			wantContains: "ha sido cancelada",
		},
		{
			name:         "unknown status",
			status:       "archived",
			prepareMocks: func(repo *mocks.ReservationRepository, settings *mocks.SiteConfigProvider) {},
			wantErr:      service.ErrInvalidStatus,
		},
		{
			name:   "pending has no template",
			status: domain.StatusPending,
			prepareMocks: func(repo *mocks.ReservationRepository, settings *mocks.SiteConfigProvider) {
				repo.On("GetByID", 3).Return(stored, nil).Once()
				settings.On("SiteConfig", mock.Anything).Return(service.SiteConfig{RestaurantName: "Pepito's House"}).Once()
			},
			wantErr: service.ErrInvalidInput,
		},
		{
			name:   "reservation without phone",
			status: domain.StatusConfirmed,
			prepareMocks: func(repo *mocks.ReservationRepository, settings *mocks.SiteConfigProvider) {
				noPhone := stored
				noPhone.Phone = ""
				repo.On("GetByID", 3).Return(noPhone, nil).Once()
				settings.On("SiteConfig", mock.Anything).Return(service.SiteConfig{RestaurantName: "Pepito's House"}).Once()
			},
			wantErr: service.ErrNoPhoneConfigured,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := new(mocks.ReservationRepository)
			settings := new(mocks.SiteConfigProvider)
			testCase.prepareMocks(repo, settings)

			svc := newReservationService(repo, new(mocks.ReservationPublisher), new(mocks.StatsReader), settings)

			notification, err := svc.ComposeNotification(context.Background(), 3, testCase.status)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Contains(t, notification.Message, testCase.wantContains)
				assert.Contains(t, notification.URL, "https://wa.me/584141234567?text=")
			}
			repo.AssertExpectations(t)
			settings.AssertExpectations(t)
		})
	}
}

func TestReservationService_StatsForDate(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(*mocks.StatsReader, *mocks.ReservationRepository)
		wantTotal    int
	}{
		{
			name: "served from redis counters",
			prepareMocks: func(stats *mocks.StatsReader, repo *mocks.ReservationRepository) {
				stats.On("CountsForDate", mock.Anything, "2026-10-15").
					Return(map[string]int{"pending": 2, "confirmed": 3}, nil).Once()
			},
			wantTotal: 5,
		},
		{
			name: "cold counters fall back to database",
			prepareMocks: func(stats *mocks.StatsReader, repo *mocks.ReservationRepository) {
				stats.On("CountsForDate", mock.Anything, "2026-10-15").
					Return(map[string]int{}, nil).Once()
				repo.On("CountByDate", "2026-10-15").
					Return(map[string]int{"completed": 4}, nil).Once()
			},
			wantTotal: 4,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := new(mocks.ReservationRepository)
			stats := new(mocks.StatsReader)
			testCase.prepareMocks(stats, repo)

			svc := newReservationService(repo, new(mocks.ReservationPublisher), stats, new(mocks.SiteConfigProvider))

			dayStats, err := svc.StatsForDate(context.Background(), "2026-10-15")

			assert.NoError(t, err)
			assert.Equal(t, "2026-10-15", dayStats.Date)
			assert.Equal(t, testCase.wantTotal, dayStats.Total)
			repo.AssertExpectations(t)
			stats.AssertExpectations(t)
		})
	}
}
