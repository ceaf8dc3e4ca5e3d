// Package ledger keeps the persistent top-N high score table.
//
// The table always holds exactly Size entries sorted by descending score.
// Equal scores keep their relative order, so an older entry outranks a
// newer one with the same score.
package ledger

import (
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Size is the number of entries in the table.
const Size = 10

// DefaultSeed seeds the filler table when the caller has no seed of its own.
const DefaultSeed uint32 = 0xC0FFEE01

// Entry is one ranked score.
type Entry struct {
	Initials string
	Score    int
}

// Ledger is the in-memory table plus its persistence.
// It is safe for use by several game instances at once.
type Ledger struct {
	mu      sync.Mutex
	entries [Size]Entry
	store   Store
	logger  *log.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger routes recovery warnings to logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Open loads the table from store. A missing or malformed save is replaced by
// a filler table generated from seed, which is persisted right away. Open never
// fails: if the store cannot be written the ledger keeps working in memory.
func Open(store Store, seed uint32, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.store == nil {
		l.store = MemoryStore{}
	}

	data, err := l.store.Load()
	if err == nil {
		entries, perr := Parse(data)
		if perr == nil {
			l.entries = entries
			return l
		}
		l.logger.Warn("high score table is malformed, regenerating", "err", perr)
	} else if !errors.Is(err, ErrNoSave) {
		l.logger.Warn("high score table unreadable, regenerating", "err", err)
	}

	l.entries = Filler(seed)
	l.persist()
	return l
}

// New returns a ledger that only lives in memory.
func New(seed uint32) *Ledger {
	return Open(MemoryStore{}, seed)
}

// Entries returns a copy of the table, best first.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, Size)
	copy(out, l.entries[:])
	return out
}

// Lowest returns the last ranked entry.
func (l *Ledger) Lowest() Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[Size-1]
}

// Qualifies reports whether score would enter the table.
func (l *Ledger) Qualifies(score int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.qualifies(score)
}

func (l *Ledger) qualifies(score int) bool {
	return score > 0 && score > l.entries[Size-1].Score
}

// Submit records a qualifying score. It replaces the lowest entry, re-sorts and
// saves. A score that does not qualify leaves the table untouched and returns
// false. Scores above MaxScore are stored as MaxScore so the saved table
// always parses. The returned rank is zero-based and only meaningful when ok
// is true.
func (l *Ledger) Submit(initials string, score int) (rank int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	score = min(score, MaxScore)

	if !l.qualifies(score) {
		return 0, false
	}

	l.entries[Size-1] = Entry{Initials: NormalizeInitials(initials), Score: score}
	sort.SliceStable(l.entries[:], func(i, j int) bool {
		return l.entries[i].Score > l.entries[j].Score
	})
	l.persist()

	// The new entry sits after every older entry of equal score.
	rank = -1
	for _, e := range l.entries {
		if e.Score >= score {
			rank++
		}
	}
	return rank, true
}

// Persistent reports whether saves still reach the store.
func (l *Ledger) Persistent() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, mem := l.store.(MemoryStore)
	return !mem
}

// persist writes the table. On failure it falls back to memory for the rest
// of the session. Callers hold mu or own l exclusively.
func (l *Ledger) persist() {
	if err := l.store.Save(Format(l.entries)); err != nil {
		l.logger.Warn("high scores will not be saved this session", "err", err)
		l.store = MemoryStore{}
	}
}

// NormalizeInitials returns exactly three uppercase letters. Lowercase letters
// are upcased, anything else becomes 'A', and short input is padded with 'A'.
func NormalizeInitials(s string) string {
	out := []byte("AAA")
	i := 0
	for _, r := range s {
		if i == len(out) {
			break
		}
		switch {
		case r >= 'A' && r <= 'Z':
			out[i] = byte(r)
		case r >= 'a' && r <= 'z':
			out[i] = byte(r - 'a' + 'A')
		}
		i++
	}
	return string(out)
}
