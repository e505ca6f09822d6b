package store

import "time"

// Memory keeps the value in process memory. Nothing survives a restart.
// ReadErr and WriteErr, when set, are returned instead of touching the value.
type Memory struct {
	ReadErr  error
	WriteErr error

	data      []byte
	has       bool
	updatedAt time.Time
}

// NewMemory returns a Memory backend, optionally pre-seeded with data.
func NewMemory(seed []byte) *Memory {
	m := &Memory{}
	if seed != nil {
		m.data = append([]byte(nil), seed...)
		m.has = true
		m.updatedAt = time.Now()
	}
	return m
}

// Read returns the stored value.
func (m *Memory) Read() ([]byte, bool, error) {
	if m.ReadErr != nil {
		return nil, false, m.ReadErr
	}
	if !m.has {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

// Write replaces the stored value.
func (m *Memory) Write(data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.data = append([]byte(nil), data...)
	m.has = true
	m.updatedAt = time.Now()
	return nil
}

// UpdatedAt returns the time of the last write.
func (m *Memory) UpdatedAt() (time.Time, bool, error) {
	return m.updatedAt, m.has, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
