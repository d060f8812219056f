package storage

// Backend is the abstract persistence contract the record store writes
// through. A backend holds one opaque blob: the serialized date→record
// mapping. Backends are interchangeable and best-effort; a failing backend
// surfaces through Healthy, never through the caller's control flow.
type Backend interface {
	// Name identifies the backend in status output and logs.
	Name() string

	// Load returns the stored blob, or (nil, nil) when nothing has been
	// stored yet.
	Load() ([]byte, error)

	// Save replaces the stored blob.
	Save(data []byte) error

	// Healthy reports whether the most recent operation succeeded.
	Healthy() bool

	Close() error
}

// Status is a point-in-time health snapshot of one backend.
type Status struct {
	Name    string
	Healthy bool
}
