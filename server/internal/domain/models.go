package domain

import "time"

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"-"`
	IsFirstLogin bool   `json:"isFirstLogin"`
	Role         string `json:"role"`
}

type Setting struct {
	ID    int    `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// MenuItem's CategoryID is nullable on purpose: deleting a category leaves
// its items dangling and the read path renders them as uncategorized.
type MenuItem struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Ingredients string    `json:"ingredients"`
	CategoryID  *int      `json:"categoryId"`
	IsAvailable bool      `json:"isAvailable"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Staff struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// Location is a singleton record. Hours is a JSON string edited as-is by the
// admin panel. Phone doubles as the WhatsApp destination for orders and
// reservation notifications.
type Location struct {
	ID             int    `json:"id"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	MapCoordinates string `json:"mapCoordinates"`
	Hours          string `json:"hours"`
}

type SocialMedia struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	IsActive bool   `json:"isActive"`
}

// Reservation statuses. Transitions are deliberately unconstrained so an
// admin can correct mistakes; only the value itself is validated.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Reservation.Date is the canonical ISO-8601 calendar date (2006-01-02),
// normalized on creation from either ISO or dd/mm/yyyy input.
type Reservation struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// DayStats is one day's worth of reservation counters.
type DayStats struct {
	Date   string         `json:"date"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}
