package cart

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/PelusheLD/Pepito-s-House/internal/whatsapp"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/client"
)

// Line is one cart entry. Name and Price are snapshots taken when the item
// was added, so a concurrent menu edit does not change an in-flight order.
type Line struct {
	ID         string  `json:"id"`
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity"`
}

var ErrEmptyCart = errors.New("cart is empty")

// Persister saves and restores cart lines between kiosk restarts.
type Persister interface {
	Save(lines []Line) error
	Load() ([]Line, error)
}

// Store is the in-memory cart. All mutations persist before returning.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	persister Persister
}

func NewStore(persister Persister) *Store {
	s := &Store{persister: persister}
	if persister != nil {
		lines, err := persister.Load()
		if err != nil {
			log.Printf("[kiosk] discarding saved cart: %v", err)
		} else {
			s.lines = lines
		}
	}
	return s
}

// AddItem merges with an existing line for the same menu item instead of
// creating a duplicate. Quantities below 1 count as 1.
func (s *Store) AddItem(item client.MenuItem, quantity int) Line {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].MenuItemID == item.ID {
			s.lines[i].Quantity += quantity
			line := s.lines[i]
			s.persist()
			return line
		}
	}

	line := Line{
		ID:         uuid.NewString(),
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Image:      item.Image,
		Quantity:   quantity,
	}
	s.lines = append(s.lines, line)
	s.persist()
	return line
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are ignored;
// removal is an explicit operation, not a side effect of setting zero.
func (s *Store) UpdateQuantity(lineID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// RemoveItem drops a line. Unknown ids are a no-op.
func (s *Store) RemoveItem(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Checkout composes the WhatsApp order deep-link for the current cart. The
// cart is left intact so the customer can retry if the chat never opens.
func (s *Store) Checkout(restaurantPhone, countryCode string, delivery *whatsapp.DeliveryInfo) (message, url string, err error) {
	s.mu.Lock()
	if len(s.lines) == 0 {
		s.mu.Unlock()
		return "", "", ErrEmptyCart
	}
	lines := make([]whatsapp.OrderLine, 0, len(s.lines))
	for _, line := range s.lines {
		lines = append(lines, whatsapp.OrderLine{
			Quantity: line.Quantity,
			Name:     line.Name,
			Price:    line.Price,
		})
	}
	total := 0.0
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	s.mu.Unlock()

	message = whatsapp.OrderMessage(lines, total, delivery)
	url, err = whatsapp.Link(restaurantPhone, message, countryCode)
	if err != nil {
		return "", "", err
	}
	return message, url, nil
}

// persist is called with the lock held.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.lines); err != nil {
		log.Printf("[kiosk] failed to persist cart: %v", err)
	}
}
