package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PelusheLD/Pepito-s-House/internal/whatsapp"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/cart"
	"github.com/PelusheLD/Pepito-s-House/kiosk/internal/client"
)

func arepa() client.MenuItem {
	return client.MenuItem{ID: 1, Name: "Arepa reina pepiada", Price: 5.5, IsAvailable: true}
}

func tequenos() client.MenuItem {
	return client.MenuItem{ID: 2, Name: "Tequeños", Price: 4.0, IsAvailable: true}
}

func TestStore_AddItemMergesSameMenuItem(t *testing.T) {
	store := cart.NewStore(nil)

	first := store.AddItem(arepa(), 2)
	second := store.AddItem(arepa(), 3)

	lines := store.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestStore_AddItemClampsQuantity(t *testing.T) {
	store := cart.NewStore(nil)

	store.AddItem(arepa(), 0)
	store.AddItem(tequenos(), -3)

	for _, line := range store.Lines() {
		assert.Equal(t, 1, line.Quantity)
	}
	assert.Equal(t, 2, store.TotalItems())
}

func TestStore_UpdateQuantity(t *testing.T) {
	store := cart.NewStore(nil)
	line := store.AddItem(arepa(), 2)

	store.UpdateQuantity(line.ID, 4)
	assert.Equal(t, 4, store.TotalItems())

	// Values below one are ignored, not treated as removal.
	store.UpdateQuantity(line.ID, 0)
	assert.Equal(t, 4, store.TotalItems())

	store.UpdateQuantity("no-such-line", 9)
	assert.Equal(t, 4, store.TotalItems())
}

func TestStore_RemoveItem(t *testing.T) {
	store := cart.NewStore(nil)
	line := store.AddItem(arepa(), 2)
	store.AddItem(tequenos(), 1)

	store.RemoveItem(line.ID)
	assert.Len(t, store.Lines(), 1)

	// Unknown ids are a no-op.
	store.RemoveItem("no-such-line")
	assert.Len(t, store.Lines(), 1)
}

func TestStore_Totals(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddItem(arepa(), 2)
	store.AddItem(tequenos(), 1)

	assert.Equal(t, 3, store.TotalItems())
	assert.InDelta(t, 15.0, store.TotalPrice(), 0.001)

	store.Clear()
	assert.Equal(t, 0, store.TotalItems())
	assert.Zero(t, store.TotalPrice())
}

func TestStore_Checkout(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		store := cart.NewStore(nil)

		_, _, err := store.Checkout("4141234567", "58", nil)

		assert.ErrorIs(t, err, cart.ErrEmptyCart)
	})

	t.Run("missing restaurant phone", func(t *testing.T) {
		store := cart.NewStore(nil)
		store.AddItem(arepa(), 1)

		_, _, err := store.Checkout("", "58", nil)

		assert.ErrorIs(t, err, whatsapp.ErrNoPhone)
	})

	t.Run("builds message and link without clearing the cart", func(t *testing.T) {
		store := cart.NewStore(nil)
		store.AddItem(arepa(), 2)
		store.AddItem(tequenos(), 1)

		message, url, err := store.Checkout("4141234567", "58", &whatsapp.DeliveryInfo{Delivery: false})

		assert.NoError(t, err)
		assert.Contains(t, message, "2x Arepa reina pepiada - $11.00")
		assert.Contains(t, message, "Total: $15.00")
		assert.Contains(t, url, "https://wa.me/584141234567?text=")
		assert.Equal(t, 3, store.TotalItems())
	})
}

func TestFilePersister_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	store := cart.NewStore(cart.NewFilePersister(path))
	store.AddItem(arepa(), 2)
	store.AddItem(tequenos(), 1)

	restored := cart.NewStore(cart.NewFilePersister(path))

	assert.Equal(t, store.Lines(), restored.Lines())
	assert.Equal(t, 3, restored.TotalItems())
}

func TestFilePersister_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	store := cart.NewStore(cart.NewFilePersister(path))

	assert.Empty(t, store.Lines())
}

func TestFilePersister_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := cart.NewStore(cart.NewFilePersister(path))

	assert.Empty(t, store.Lines())
}
