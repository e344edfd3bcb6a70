package main

import (
	"context"
	"time"

	"github.com/PelusheLD/Pepito-s-House/config"
	"github.com/PelusheLD/Pepito-s-House/internal/events"
	"github.com/PelusheLD/Pepito-s-House/stats/internal/service"
	"github.com/PelusheLD/Pepito-s-House/stats/internal/storage"
)

// counterTTL keeps daily counters around long enough for month-over-month
// dashboards. Older dates fall back to the database.
const counterTTL = 90 * 24 * time.Hour

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(events.Topic, "stats-consumer")
	defer reader.Close()

	store := storage.NewRedisCounters(rdb, counterTTL)
	consumer := service.NewConsumer(reader, store)

	consumer.Start(context.Background())
}
