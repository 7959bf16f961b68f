// Package devserver is a local stand-in for the destinos backend. It serves the
// same two collections the Home screen reads, json-server style.
package devserver

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jask/viagens/internal/destinations"
)

//go:embed seed.json
var seedJSON []byte

// Collection names double as URL path segments.
const (
	CollectionPopular     = "destinosPopulares"
	CollectionRecommended = "recomendados"
)

// Store holds the served collections. It is read-only after load.
type Store struct {
	collections map[string][]destinations.Destination
}

type dbFile struct {
	Popular     []destinations.Destination `json:"destinosPopulares" validate:"dive"`
	Recommended []destinations.Destination `json:"recomendados" validate:"dive"`
}

// NewStore builds a store from in-memory lists.
func NewStore(popular, recommended []destinations.Destination) *Store {
	return &Store{collections: map[string][]destinations.Destination{
		CollectionPopular:     nonNil(popular),
		CollectionRecommended: nonNil(recommended),
	}}
}

// LoadStore reads a db.json file. An empty path loads the embedded seed.
func LoadStore(path string) (*Store, error) {
	data := seedJSON
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read data file: %w", err)
		}
		data = b
	}
	return ParseStore(data)
}

// ParseStore decodes and validates db.json content.
func ParseStore(data []byte) (*Store, error) {
	var db dbFile
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}
	if err := validator.New().Struct(db); err != nil {
		return nil, fmt.Errorf("invalid data file: %w", err)
	}
	return NewStore(db.Popular, db.Recommended), nil
}

// List returns a collection; ok is false for unknown names.
func (s *Store) List(name string) ([]destinations.Destination, bool) {
	items, ok := s.collections[name]
	return items, ok
}

// Get returns one record by id.
func (s *Store) Get(name, id string) (destinations.Destination, bool) {
	for _, d := range s.collections[name] {
		if d.ID.String() == id {
			return d, true
		}
	}
	return destinations.Destination{}, false
}

func nonNil(items []destinations.Destination) []destinations.Destination {
	if items == nil {
		return []destinations.Destination{}
	}
	return items
}
