// Package roster owns the ordered list of family members and keeps it in
// sync with durable local storage.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/theirongolddev/deeday/internal/model"

	"github.com/google/uuid"
)

// DefaultKey is the storage key that holds the serialized roster.
const DefaultKey = "familyMembers"

var (
	// ErrNotFound is returned when no member matches an id or prefix.
	ErrNotFound = errors.New("member not found")
	// ErrAmbiguous is returned when an id prefix matches more than one member.
	ErrAmbiguous = errors.New("id prefix matches more than one member")
	// ErrMissingID is returned by Decode for a stored record without an id.
	ErrMissingID = errors.New("member has no id")
)

// Storage is the durable slot the roster is persisted to.
// Read returns ok=false when nothing has been stored yet.
type Storage interface {
	Read() (data []byte, ok bool, err error)
	Write(data []byte) error
}

// Phase is the store's persistence lifecycle.
type Phase int

const (
	// PhaseLoaded means the roster is exactly what was read at startup.
	// Nothing is written back in this phase.
	PhaseLoaded Phase = iota
	// PhaseMutated means a user action changed the roster and every
	// subsequent change is persisted.
	PhaseMutated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "loaded"
	case PhaseMutated:
		return "mutated"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Store is the authoritative in-memory roster.
// It is not safe for concurrent use; callers mutate it from one goroutine.
type Store struct {
	storage Storage
	logger  *slog.Logger
	newID   func() string

	members []model.Member
	phase   Phase
	lastErr error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for swallowed storage failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator overrides the member id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Open loads the roster from storage. Missing, unreadable or malformed data
// yields an empty roster; Open never fails.
func Open(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  slog.Default(),
		newID:   uuid.NewString,
		phase:   PhaseLoaded,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.members = s.load()
	return s
}

func (s *Store) load() []model.Member {
	data, ok, err := s.storage.Read()
	if err != nil {
		s.logger.Debug("roster read failed, starting empty", "error", err)
		return nil
	}
	if !ok || len(data) == 0 {
		return nil
	}

	members, err := Decode(data)
	if err != nil {
		s.logger.Debug("roster data malformed, starting empty", "error", err)
		return nil
	}
	s.logger.Debug("roster loaded", "members", len(members))
	return members
}

// Add appends a new member and persists the roster. If any field is empty
// nothing happens and ok is false.
func (s *Store) Add(name string, birthdate model.Date, relationship string) (model.Member, bool) {
	m := model.Member{
		Name:         name,
		Birthdate:    birthdate,
		Relationship: relationship,
	}
	if !m.Complete() {
		return model.Member{}, false
	}

	m.ID = s.uniqueID()
	s.members = append(s.members, m)
	s.persist()
	return m, true
}

// maxIDAttempts bounds retries against the configured generator before
// falling back to random UUIDs.
const maxIDAttempts = 16

func (s *Store) uniqueID() string {
	for range maxIDAttempts {
		if id := s.newID(); s.freeID(id) {
			return id
		}
	}
	s.logger.Debug("id generator kept colliding, falling back to uuid")
	for {
		if id := uuid.NewString(); s.freeID(id) {
			return id
		}
	}
}

func (s *Store) freeID(id string) bool {
	if id == "" {
		return false
	}
	_, found := s.Get(id)
	return !found
}

// Delete removes the member with id. It reports whether a member was removed;
// deleting an unknown id is a no-op.
func (s *Store) Delete(id string) bool {
	for i, m := range s.members {
		if m.ID != id {
			continue
		}
		s.members = append(s.members[:i:i], s.members[i+1:]...)
		s.persist()
		return true
	}
	return false
}

// List returns a copy of the roster in insertion order.
func (s *Store) List() []model.Member {
	out := make([]model.Member, len(s.members))
	copy(out, s.members)
	return out
}

// Len returns the number of members.
func (s *Store) Len() int {
	return len(s.members)
}

// Get returns the member with the exact id.
func (s *Store) Get(id string) (model.Member, bool) {
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return model.Member{}, false
}

// Resolve finds a member by full id or unique id prefix.
func (s *Store) Resolve(prefix string) (model.Member, error) {
	if prefix == "" {
		return model.Member{}, ErrNotFound
	}
	if m, ok := s.Get(prefix); ok {
		return m, nil
	}

	var (
		match model.Member
		hits  int
	)
	for _, m := range s.members {
		if strings.HasPrefix(m.ID, prefix) {
			match = m
			hits++
		}
	}
	switch hits {
	case 0:
		return model.Member{}, fmt.Errorf("%w: %q", ErrNotFound, prefix)
	case 1:
		return match, nil
	default:
		return model.Member{}, fmt.Errorf("%w: %q", ErrAmbiguous, prefix)
	}
}

// Phase returns the current persistence phase.
func (s *Store) Phase() Phase {
	return s.phase
}

// LastPersistErr returns the error from the most recent write, if any.
// Write failures never reach the user; this is for diagnostics only.
func (s *Store) LastPersistErr() error {
	return s.lastErr
}

func (s *Store) persist() {
	s.phase = PhaseMutated

	data, err := Encode(s.members)
	if err == nil {
		err = s.storage.Write(data)
	}
	s.lastErr = err
	if err != nil {
		s.logger.Debug("roster write failed, keeping in-memory state", "error", err)
	}
}

// Encode serializes members in the persisted layout: a JSON array of
// {id, name, birthdate, relationship} records.
func Encode(members []model.Member) ([]byte, error) {
	if members == nil {
		members = []model.Member{}
	}
	return json.Marshal(members)
}

// Decode parses the persisted layout. Every record needs an id and a valid
// birthdate; one bad record rejects the whole roster.
func Decode(data []byte) ([]model.Member, error) {
	var members []model.Member
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	for i, m := range members {
		if m.ID == "" {
			return nil, fmt.Errorf("decoding roster: record %d: %w", i, ErrMissingID)
		}
		if !m.Birthdate.IsValid() {
			return nil, fmt.Errorf("decoding roster: record %d: %w", i, model.ErrInvalidDate)
		}
	}
	return members, nil
}
