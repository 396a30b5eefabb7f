// Package store implements the in-process POS domain store: catalog items,
// the active cart, settings and the append-only transaction history, with
// per-collection change notifications and blob persistence.
//
// The store is deliberately single-threaded: the application is a single
// cashier terminal and every operation runs to completion synchronously. It
// is not safe for concurrent use.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/obs"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/storage"
)

// ErrNotFound indicates the referenced item does not exist.
var ErrNotFound = errors.New("item not found")

// ErrInvalidInput is returned when the provided payload is invalid.
var ErrInvalidInput = errors.New("invalid input")

// Options configures a Store. Blobs is the only dependency most callers set
// explicitly; everything else has a sensible default.
type Options struct {
	Blobs  storage.Blobs
	Logger zerolog.Logger
	// Now supplies timestamps; defaults to time.Now. Injected by tests.
	Now func() time.Time
	// NewID supplies identifiers; defaults to uuid.NewString.
	NewID func() string
	// DefaultTaxRate seeds settings when no settings blob exists yet.
	DefaultTaxRate float64
	// OnPersistError is invoked whenever a persistence write fails. Failures
	// never roll back the in-memory mutation; this hook is the only way for
	// callers to observe them besides the log and metrics.
	OnPersistError func(key string, err error)
}

// Store owns the four POS collections. Construct one per process with New
// and hand it to consumers; mutations are observed through Subscribe and
// state is read through the query methods, which return deep copies.
type Store struct {
	blobs          storage.Blobs
	log            zerolog.Logger
	now            func() time.Time
	newID          func() string
	onPersistError func(key string, err error)

	items       []domain.Item
	cart        []domain.LineItem
	txns        []domain.Transaction
	settings    domain.Settings
	lastDeleted *domain.Item

	subs      map[Topic][]subscriber
	nextSubID int
}

// New constructs a Store and loads all collections from the blob store.
// Absent or undecodable blobs fall back to empty defaults.
func New(opts Options) *Store {
	s := &Store{
		blobs:          opts.Blobs,
		log:            opts.Logger,
		now:            opts.Now,
		newID:          opts.NewID,
		onPersistError: opts.OnPersistError,
		settings:       domain.Settings{TaxRate: opts.DefaultTaxRate},
		subs:           make(map[Topic][]subscriber),
	}
	if s.blobs == nil {
		s.blobs = storage.NewMemory()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	s.load(storage.KeyItems, &s.items)
	s.load(storage.KeyCart, &s.cart)
	s.load(storage.KeyTransactions, &s.txns)
	if opts.DefaultTaxRate < 0 {
		s.settings.TaxRate = 0
	}
	s.load(storage.KeySettings, &s.settings)
	if s.settings.TaxRate < 0 {
		s.settings.TaxRate = 0
	}
	return s
}

func (s *Store) load(key string, dest any) {
	if _, err := s.blobs.Get(key, dest); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("load blob, using default")
	}
}

// persist writes one collection. Failures are logged, counted and reported
// through the optional hook but never abort the mutation: in-memory state
// stays authoritative for the session.
func (s *Store) persist(key string, v any) {
	err := s.blobs.Put(key, v)
	if err == nil {
		return
	}
	s.log.Warn().Err(err).Str("key", key).Msg("persist failed")
	if obs.PersistFailuresTotal != nil {
		obs.PersistFailuresTotal.WithLabelValues(key).Inc()
	}
	if s.onPersistError != nil {
		s.onPersistError(key, err)
	}
}

// Items returns a deep copy of the catalog.
func (s *Store) Items() []domain.Item {
	out := make([]domain.Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

// Cart returns a copy of the active cart lines.
func (s *Store) Cart() []domain.LineItem {
	return append([]domain.LineItem{}, s.cart...)
}

// Transactions returns a deep copy of the sale history.
func (s *Store) Transactions() []domain.Transaction {
	out := make([]domain.Transaction, len(s.txns))
	for i, t := range s.txns {
		out[i] = t.Clone()
	}
	return out
}

// Settings returns the current settings.
func (s *Store) Settings() domain.Settings {
	return s.settings
}
