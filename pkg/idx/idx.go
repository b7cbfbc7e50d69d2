package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID in its canonical 26 character string form. Users, classes,
// games, predictions and reset tokens are all keyed by one.
type ID string

// Zero is the empty placeholder ID.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	once sync.Once
	gen  *generator
)

// generator serialises access to a monotonic entropy source so IDs minted
// within the same millisecond still sort in creation order.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) at(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), g.entropy).String())
}

func initGenerator() {
	gen = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a new ID stamped with the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns a new ID stamped with t. Handy in tests that need a stable
// ordering.
func NewAt(t time.Time) ID {
	once.Do(initGenerator)
	return gen.at(t)
}

// Parse validates s as a ULID and returns it as an ID.
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

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

// Time extracts the embedded timestamp, or the zero time for invalid IDs.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
