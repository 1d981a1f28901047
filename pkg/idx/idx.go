package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID in canonical string form. IDs generated by this package sort
// lexicographically in creation order, which the stores rely on as an
// ordering tiebreak.
type ID string

// Zero is the empty ID.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	globalOnce sync.Once
	global     *Generator
)

// Generator hands out strictly increasing ULIDs. It is safe for concurrent
// use; two calls within the same millisecond still yield ordered IDs.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	last    ulid.ULID
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns the next ID stamped with the current UTC time.
func (g *Generator) New() ID {
	return g.NewAt(time.Now().UTC())
}

// NewAt returns the next ID stamped with t. If t is earlier than the time of
// the previous ID, the previous timestamp is reused so ordering holds even
// when the wall clock steps backwards.
func (g *Generator) NewAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := ulid.Timestamp(t)
	if ms < g.last.Time() {
		ms = g.last.Time()
	}

	u := ulid.MustNew(ms, g.entropy)
	g.last = u
	return ID(u.String())
}

func initGlobal() {
	global = NewGenerator()
}

// New returns a new ID from the process-wide generator.
func New() ID {
	globalOnce.Do(initGlobal)
	return global.New()
}

// NewAt returns a new ID from the process-wide generator stamped with t.
func NewAt(t time.Time) ID {
	globalOnce.Do(initGlobal)
	return global.NewAt(t)
}

// Parse validates s as a ULID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// MustParse parses or panics. Useful for hard-coded IDs in tests.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

// Time extracts the embedded UTC timestamp, or the zero time for invalid IDs.
func (id ID) Time() time.Time {
	if id.IsZero() {
		return time.Time{}
	}
	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time()).UTC()
}

// Compare reports the lexical ordering between a and b.
func Compare(a, b ID) int {
	return strings.Compare(a.String(), b.String())
}
