package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage"
)

var errNullValue = errors.New("stored value is null")

// Store owns the six application collections. Mutators only change memory;
// Commit writes the full snapshot back to the provider.
type Store struct {
	provider storage.Provider
	clock    func() time.Time
	newID    func() string

	data   Snapshot
	loaded bool
	dirty  bool
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for timestamps and seed data
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIDGenerator overrides how fresh entity ids are produced
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func New(provider storage.Provider, opts ...Option) *Store {
	s := &Store{
		provider: provider,
		clock:    time.Now,
		newID:    func() string { return uuid.New().String() },
		data:     Snapshot{}.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads every collection from the provider. Absent or undecodable
// values fall back to defaults; provider errors are propagated.
func (s *Store) Load() error {
	now := s.clock()

	habits, habitsFound, err := loadCollection[models.Habit](s.provider, constants.KeyHabits)
	if err != nil {
		return err
	}
	if !habitsFound {
		habits = DefaultHabits(now, s.newID)
	}

	logs, logsFound, err := loadCollection[models.HabitLog](s.provider, constants.KeyLogs)
	if err != nil {
		return err
	}
	// Sample history only makes sense against the sample habits
	if !logsFound && !habitsFound {
		logs = SampleLogs(habits, now)
	}

	wins, winsFound, err := loadCollection[models.MicroWin](s.provider, constants.KeyMicroWins)
	if err != nil {
		return err
	}
	if !winsFound {
		wins = DefaultMicroWins(s.newID)
	}

	winLogs, _, err := loadCollection[models.MicroWinLog](s.provider, constants.KeyMicroWinLogs)
	if err != nil {
		return err
	}
	plans, _, err := loadCollection[models.DayPlan](s.provider, constants.KeyPlans)
	if err != nil {
		return err
	}
	journal, _, err := loadCollection[models.JournalEntry](s.provider, constants.KeyJournal)
	if err != nil {
		return err
	}

	s.data = Snapshot{
		Habits:       habits,
		Logs:         logs,
		MicroWins:    wins,
		MicroWinLogs: winLogs,
		Plans:        plans,
		Journal:      journal,
	}.Clone()
	s.loaded = true
	s.dirty = false
	return nil
}

// loadCollection decodes the array stored under key. found is false when the
// key is absent, its value does not decode, or it is null.
func loadCollection[T any](p storage.Provider, key string) (items []T, found bool, err error) {
	raw, ok, err := p.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		logger.Fallback(key, nil)
		return nil, false, nil
	}

	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Fallback(key, err)
		return nil, false, nil
	}
	// A stored null decodes without error but holds no array
	if items == nil {
		logger.Fallback(key, errNullValue)
		return nil, false, nil
	}
	return items, true, nil
}

// Commit writes all six collections. Nothing is batched: a failure part-way
// can leave earlier keys updated and later ones stale.
func (s *Store) Commit() error {
	if !s.loaded {
		return fmt.Errorf("cannot commit before state is loaded")
	}

	// Clone guarantees non-nil slices so every key encodes as an array
	snap := s.data.Clone()
	values := []struct {
		key string
		v   interface{}
	}{
		{constants.KeyHabits, snap.Habits},
		{constants.KeyLogs, snap.Logs},
		{constants.KeyMicroWins, snap.MicroWins},
		{constants.KeyMicroWinLogs, snap.MicroWinLogs},
		{constants.KeyPlans, snap.Plans},
		{constants.KeyJournal, snap.Journal},
	}

	for _, kv := range values {
		data, err := json.Marshal(kv.v)
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", kv.key, err)
		}
		if err := s.provider.Set(kv.key, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", kv.key, err)
		}
	}

	keys := make([]string, len(values))
	for i, kv := range values {
		keys[i] = kv.key
	}
	logger.Committed(keys)
	s.dirty = false
	return nil
}

// Dirty reports whether there are in-memory changes not yet committed
func (s *Store) Dirty() bool {
	return s.dirty
}

// Loaded reports whether Load has completed
func (s *Store) Loaded() bool {
	return s.loaded
}

// Snapshot returns a deep copy of the current collections
func (s *Store) Snapshot() Snapshot {
	return s.data.Clone()
}

// Now returns the store's current time
func (s *Store) Now() time.Time {
	return s.clock()
}

func (s *Store) markDirty() {
	s.dirty = true
}

// Import overwrites each collection present in p; absent collections are kept.
func (s *Store) Import(p Partial) {
	if p.Habits != nil {
		s.data.Habits = cloneSlice(*p.Habits)
		s.markDirty()
	}
	if p.Logs != nil {
		s.data.Logs = cloneSlice(*p.Logs)
		s.markDirty()
	}
	if p.MicroWins != nil {
		s.data.MicroWins = cloneSlice(*p.MicroWins)
		s.markDirty()
	}
	if p.MicroWinLogs != nil {
		s.data.MicroWinLogs = cloneSlice(*p.MicroWinLogs)
		s.markDirty()
	}
	if p.Plans != nil {
		s.data.Plans = clonePlans(*p.Plans)
		s.markDirty()
	}
	if p.Journal != nil {
		s.data.Journal = cloneSlice(*p.Journal)
		s.markDirty()
	}
}
