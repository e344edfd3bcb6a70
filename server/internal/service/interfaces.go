package service

import (
	"context"

	"github.com/PelusheLD/Pepito-s-House/internal/events"
	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

type MenuRepository interface {
	ListAvailable() ([]domain.MenuItem, error)
	ListAll() ([]domain.MenuItem, error)
	ListFeatured() ([]domain.MenuItem, error)
	ListByCategory(categoryID int) ([]domain.MenuItem, error)
	GetByID(id int) (domain.MenuItem, error)
	Insert(item *domain.MenuItem) error
	Update(item *domain.MenuItem) error
	Delete(id int) error
}

type CategoryRepository interface {
	List() ([]domain.Category, error)
	GetByID(id int) (domain.Category, error)
	GetBySlug(slug string) (domain.Category, error)
	Insert(c *domain.Category) error
	Update(c *domain.Category) error
	Delete(id int) error
}

type ReservationRepository interface {
	List() ([]domain.Reservation, error)
	ListByStatus(status string) ([]domain.Reservation, error)
	GetByID(id int) (domain.Reservation, error)
	Insert(res *domain.Reservation) error
	Update(res *domain.Reservation) error
	Delete(id int) error
	CountByDate(date string) (map[string]int, error)
}

type UserRepository interface {
	List() ([]domain.User, error)
	GetByID(id int) (domain.User, error)
	GetByUsername(username string) (domain.User, error)
	Insert(u *domain.User) error
	UpdatePassword(id int, hashed string, isFirstLogin bool) error
	Delete(id int) error
}

type SettingsRepository interface {
	List() ([]domain.Setting, error)
	Get(key string) (domain.Setting, error)
	Upsert(key, value string) (domain.Setting, error)
}

type LocationRepository interface {
	Get() (domain.Location, error)
	Insert(loc *domain.Location) error
	Update(loc *domain.Location) error
}

type StaffRepository interface {
	List() ([]domain.Staff, error)
	GetByID(id int) (domain.Staff, error)
	Insert(m *domain.Staff) error
	Update(m *domain.Staff) error
	Delete(id int) error
}

type SocialMediaRepository interface {
	List() ([]domain.SocialMedia, error)
	GetByID(id int) (domain.SocialMedia, error)
	Insert(s *domain.SocialMedia) error
	Update(s *domain.SocialMedia) error
	Delete(id int) error
}

type LocationCache interface {
	Get(ctx context.Context) (domain.Location, bool)
	Set(ctx context.Context, loc domain.Location) error
	Invalidate(ctx context.Context) error
}

type StatsReader interface {
	CountsForDate(ctx context.Context, date string) (map[string]int, error)
}

type ReservationPublisher interface {
	PublishReservationEvent(ctx context.Context, event events.ReservationEvent) error
}

// SiteConfigProvider is the slice of SettingsService other services need.
type SiteConfigProvider interface {
	SiteConfig(ctx context.Context) SiteConfig
}

type MenuServiceInterface interface {
	ListItems(includeUnavailable bool) ([]domain.MenuItem, error)
	ListFeatured() ([]domain.MenuItem, error)
	ListByCategory(categoryID int) ([]domain.MenuItem, error)
	GetItem(id int) (domain.MenuItem, error)
	CreateItem(input domain.MenuItemInput) (domain.MenuItem, error)
	UpdateItem(id int, update domain.MenuItemUpdate) (domain.MenuItem, error)
	DeleteItem(id int) error
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (domain.Category, error)
	CreateCategory(input domain.CategoryInput) (domain.Category, error)
	UpdateCategory(id int, update domain.CategoryUpdate) (domain.Category, error)
	DeleteCategory(id int) error
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, input domain.ReservationInput) (domain.Reservation, error)
	List() ([]domain.Reservation, error)
	ListByStatus(status string) ([]domain.Reservation, error)
	Get(id int) (domain.Reservation, error)
	Update(ctx context.Context, id int, update domain.ReservationUpdate) (domain.Reservation, error)
	Delete(id int) error
	ComposeNotification(ctx context.Context, id int, status string) (Notification, error)
	StatsForDate(ctx context.Context, date string) (domain.DayStats, error)
}

var (
	_ MenuServiceInterface        = (*MenuService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
	_ SiteConfigProvider          = (*SettingsService)(nil)
)
