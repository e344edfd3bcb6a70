package tests

import (
	"errors"
	"testing"

	"github.com/PelusheLD/Pepito-s-House/internal/events"
	"github.com/PelusheLD/Pepito-s-House/stats/internal/mocks"
	"github.com/PelusheLD/Pepito-s-House/stats/internal/service"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name           string
		event          events.ReservationEvent
		setupMockStore func(*mocks.CounterStore)
	}{
		{
			name: "creation increments pending",
			event: events.ReservationEvent{
				Type:          events.TypeReservationCreated,
				ReservationID: 1,
				Status:        "pending",
				Date:          "2026-10-15",
			},
			setupMockStore: func(mockStore *mocks.CounterStore) {
				mockStore.On("RecordCreated", "2026-10-15", "pending").Return(nil).Once()
			},
		},
		{
			name: "status change moves the counter",
			event: events.ReservationEvent{
				Type:          events.TypeStatusChanged,
				ReservationID: 1,
				Status:        "confirmed",
				PrevStatus:    "pending",
				Date:          "2026-10-15",
			},
			setupMockStore: func(mockStore *mocks.CounterStore) {
				mockStore.On("RecordStatusChange", "2026-10-15", "confirmed", "pending").Return(nil).Once()
			},
		},
		{
			name: "store error is swallowed",
			event: events.ReservationEvent{
				Type:          events.TypeReservationCreated,
				ReservationID: 1,
				Status:        "pending",
				Date:          "2026-10-15",
			},
			setupMockStore: func(mockStore *mocks.CounterStore) {
				mockStore.On("RecordCreated", "2026-10-15", "pending").Return(errors.New("redis error")).Once()
			},
		},
		{
			name: "unknown event type is skipped",
			event: events.ReservationEvent{
				Type:          "reservation_archived",
				ReservationID: 1,
				Status:        "pending",
				Date:          "2026-10-15",
			},
			setupMockStore: func(mockStore *mocks.CounterStore) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := new(mocks.CounterStore)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{Store: mockStore}

			consumer.ProcessEvent(testCase.event)
			mockStore.AssertExpectations(t)
		})
	}
}
