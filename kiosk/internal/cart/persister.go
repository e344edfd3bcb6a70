package cart

import (
	"encoding/json"
	"errors"
	"log"
	"os"
)

// FilePersister stores the cart as a JSON file so a kiosk restart does not
// lose an order in progress.
type FilePersister struct {
	Path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{Path: path}
}

func (p *FilePersister) Save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(p.Path, data, 0o644)
}

// Load returns an empty cart when the file is missing or corrupt. A cart is
// convenience state, never worth refusing to start over.
func (p *FilePersister) Load() ([]Line, error) {
	data, err := os.ReadFile(p.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Printf("[kiosk] cart file %s is corrupt, starting empty: %v", p.Path, err)
		return nil, nil
	}
	return lines, nil
}
