package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/PelusheLD/Pepito-s-House/internal/events"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  CounterStore
}

func NewConsumer(reader *kafka.Reader, store CounterStore) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[stats] consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("[stats] error reading message: %v", err)
			continue
		}

		var event events.ReservationEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[stats] error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(event)
	}
}

func (c *Consumer) ProcessEvent(event events.ReservationEvent) {
	switch event.Type {
	case events.TypeReservationCreated:
		if err := c.Store.RecordCreated(event.Date, event.Status); err != nil {
			log.Printf("[stats] failed to count reservation %d: %v", event.ReservationID, err)
			return
		}
	case events.TypeStatusChanged:
		if err := c.Store.RecordStatusChange(event.Date, event.Status, event.PrevStatus); err != nil {
			log.Printf("[stats] failed to move reservation %d counters: %v", event.ReservationID, err)
			return
		}
	default:
		log.Printf("[stats] skipping unknown event type %q", event.Type)
		return
	}

	log.Printf("[stats] reservation %d counted as %s on %s", event.ReservationID, event.Status, event.Date)
}
