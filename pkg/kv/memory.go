package kv

// memStore keeps everything in a map. Used by tests and as a fallback when no
// database path is configured.
type memStore struct {
	data map[string][]byte
	// failWrites makes Set/Delete fail, for exercising fail-open callers.
	failWrites bool
}

func NewMemory() Store { return &memStore{data: map[string][]byte{}} }

// NewFlaky returns an in-memory store whose writes always fail.
func NewFlaky() Store { return &memStore{data: map[string][]byte{}, failWrites: true} }

func (m *memStore) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

func (m *memStore) Set(key string, value []byte) error {
	if m.failWrites {
		return errWriteFailed
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *memStore) Delete(key string) error {
	if m.failWrites {
		return errWriteFailed
	}
	delete(m.data, key)
	return nil
}
