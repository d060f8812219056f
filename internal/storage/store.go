package storage

import (
	"encoding/json"
	"fmt"

	"github.com/goaltime/goaltime/internal/models"
)

// Store is the serialized envelope every backend holds: the full date→record
// mapping plus store-level settings. It is always written wholesale.
type Store struct {
	Version  int                         `json:"version"`
	Settings models.Settings             `json:"settings"`
	Records  map[string]models.DayRecord `json:"records"`
}

func NewStore() *Store {
	return &Store{
		Version: 1,
		Records: make(map[string]models.DayRecord),
	}
}

// Encode serializes the envelope to the on-disk blob format.
func Encode(s *Store) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize storage: %w", err)
	}
	return data, nil
}

// Decode parses a blob back into an envelope, normalizing every record so a
// hand-edited or stale blob never produces an invalid in-memory state.
func Decode(data []byte) (*Store, error) {
	s := &Store{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.Records == nil {
		s.Records = make(map[string]models.DayRecord)
	}
	for date, rec := range s.Records {
		rec.Normalize()
		s.Records[date] = rec
	}

	return s, nil
}
