package storage

// MemoryBackend keeps the blob in process memory only. It is the last link
// in the fallback chain (data survives backend failures for the lifetime of
// the process) and doubles as the test backend.
type MemoryBackend struct {
	data []byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Name() string {
	return "memory"
}

func (b *MemoryBackend) Load() ([]byte, error) {
	if b.data == nil {
		return nil, nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *MemoryBackend) Save(data []byte) error {
	b.data = make([]byte, len(data))
	copy(b.data, data)
	return nil
}

func (b *MemoryBackend) Healthy() bool {
	return true
}

func (b *MemoryBackend) Close() error {
	return nil
}
