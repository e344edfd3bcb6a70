package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// App holds the server's own knobs. Backend connections are initialized
// separately with the MustInit helpers below.
type App struct {
	Port             string
	JWTSecret        string
	TokenTTL         time.Duration
	CountryCode      string
	DefaultAdminUser string
	DefaultAdminPass string
}

func LoadApp() App {
	return App{
		Port:             getenv("PORT", "8080"),
		JWTSecret:        getenv("JWT_SECRET", "pepitos-house-dev-secret"),
		TokenTTL:         24 * time.Hour,
		CountryCode:      getenv("WHATSAPP_COUNTRY_CODE", "58"),
		DefaultAdminUser: getenv("DEFAULT_ADMIN_USER", "admin"),
		DefaultAdminPass: getenv("DEFAULT_ADMIN_PASS", "admin123"),
	}
}

// Kiosk holds the knobs of the counter-top kiosk process. It talks to the
// server over HTTP and keeps its cart on local disk.
type Kiosk struct {
	Port        string
	APIBaseURL  string
	CartFile    string
	CountryCode string
}

func LoadKiosk() Kiosk {
	return Kiosk{
		Port:        getenv("KIOSK_PORT", "8090"),
		APIBaseURL:  getenv("API_BASE_URL", "http://localhost:8080"),
		CartFile:    getenv("CART_FILE", "cart.json"),
		CountryCode: getenv("WHATSAPP_COUNTRY_CODE", "58"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
