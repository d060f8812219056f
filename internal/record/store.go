package record

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/goaltime/goaltime/internal/logger"
	"github.com/goaltime/goaltime/internal/models"
	"github.com/goaltime/goaltime/internal/storage"
)

// Store owns the full date→record mapping and writes it wholesale through a
// storage backend on every Put. It is single-writer: all mutation happens on
// the UI goroutine, so no locking is involved.
type Store struct {
	backend storage.Backend
	store   *storage.Store
	saveErr error
}

func New(backend storage.Backend) *Store {
	return &Store{
		backend: backend,
		store:   storage.NewStore(),
	}
}

// Init creates a fresh store with new settings and persists it. It fails if
// the backend already holds data.
func (s *Store) Init() error {
	data, err := s.backend.Load()
	if err != nil {
		return err
	}
	if data != nil {
		return fmt.Errorf("storage already initialized")
	}

	s.store = storage.NewStore()
	s.store.Settings = models.Settings{
		InstallID: uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	return s.flush()
}

// LoadAll reads the backend into the mapping. Absent or malformed content is
// never fatal: the store simply starts empty, which renders identically to
// "no records exist".
func (s *Store) LoadAll() {
	data, err := s.backend.Load()
	if err != nil {
		logger.Warn("storage load failed, starting empty", "error", err)
		s.store = storage.NewStore()
		return
	}
	if data == nil {
		s.store = storage.NewStore()
		return
	}

	store, err := storage.Decode(data)
	if err != nil {
		logger.Warn("storage content malformed, starting empty", "error", err)
		s.store = storage.NewStore()
		return
	}
	s.store = store
}

// Get returns the record for a date, lazily materializing the canonical
// default on first access. The default is retained in the mapping; the
// returned value is a deep copy, so edits only land through Put.
func (s *Store) Get(date string) models.DayRecord {
	rec, ok := s.store.Records[date]
	if !ok {
		rec = models.NewDayRecord()
		s.store.Records[date] = rec
	}
	return rec.Clone()
}

// Has reports whether a record exists for the date without materializing one.
func (s *Store) Has(date string) bool {
	_, ok := s.store.Records[date]
	return ok
}

// Put replaces the record for a date and persists the entire mapping.
// Persistence is fire-and-forget: failure is logged and remembered on the
// health signal, and the in-memory mapping stays authoritative regardless.
func (s *Store) Put(date string, rec models.DayRecord) {
	s.store.Records[date] = rec.Clone()
	if err := s.flush(); err != nil {
		logger.Error("persist failed, in-memory state kept", "date", date, "error", err)
		s.saveErr = err
		return
	}
	s.saveErr = nil
}

// SaveErr returns the most recent persistence failure, or nil when the last
// save succeeded. This is the only way write failures are observable.
func (s *Store) SaveErr() error {
	return s.saveErr
}

// Dates returns every date with a record, in ascending order.
func (s *Store) Dates() []string {
	dates := make([]string, 0, len(s.store.Records))
	for date := range s.store.Records {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Len returns the number of records in the mapping.
func (s *Store) Len() int {
	return len(s.store.Records)
}

// Settings returns the store-level metadata.
func (s *Store) Settings() models.Settings {
	return s.store.Settings
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) flush() error {
	data, err := storage.Encode(s.store)
	if err != nil {
		return err
	}
	return s.backend.Save(data)
}
