package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/PelusheLD/Pepito-s-House/internal/events"
)

// KafkaPublisher emits reservation lifecycle events to the reservations
// topic, keyed by reservation id so events for one reservation stay ordered.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishReservationEvent(ctx context.Context, event events.ReservationEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.ReservationID)),
		Value: payload,
	})
}
