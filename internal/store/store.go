// Package store holds the transaction history fetched from the marketplace.
//
// A Store is filled wholesale by Load, which walks every page of the remote
// collection, and is otherwise read-only. Reads are safe while a Load is in
// flight; they see the previous snapshot until the new one is complete.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/skinledger/skinledger/internal/logging"
	"github.com/skinledger/skinledger/internal/model"
)

// DefaultLimit is the page size requested when Options.Limit is unset.
const DefaultLimit = 100

// ErrNotLoaded is returned by callers that need a loaded store.
var ErrNotLoaded = errors.New("transactions not loaded")

// Fetcher retrieves one page of the transaction history.
type Fetcher interface {
	FetchPage(ctx context.Context, page, limit int, order model.Order) (*model.Page, error)
}

// FetchError reports a failed page during Load.
type FetchError struct {
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Options configures a Store.
type Options struct {
	Limit  int
	Order  model.Order
	Logger logrus.FieldLogger
	Now    func() time.Time
}

// Store is an in-memory snapshot of the account's transactions.
type Store struct {
	fetcher Fetcher
	limit   int
	order   model.Order
	logger  logrus.FieldLogger
	now     func() time.Time

	loadMu sync.Mutex // serializes Load calls

	mu       sync.RWMutex
	txns     []model.Transaction
	loaded   bool
	loadedAt time.Time
}

// New creates an empty Store backed by fetcher.
func New(fetcher Fetcher, opts Options) *Store {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if !opts.Order.Valid() {
		opts.Order = model.OrderDesc
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		fetcher: fetcher,
		limit:   opts.Limit,
		order:   opts.Order,
		logger:  opts.Logger,
		now:     opts.Now,
	}
}

// Load fetches every page and replaces the stored transactions. The page
// count is taken from the first response. Pages without a data field are
// logged and skipped. On error the previous contents are kept.
func (s *Store) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	log := s.logger.WithField("load_id", uuid.NewString())
	start := s.now()

	first, err := s.fetcher.FetchPage(ctx, 1, s.limit, s.order)
	if err != nil {
		return &FetchError{Page: 1, Err: err}
	}

	pages := first.Pagination.Pages
	log.WithField("pages", pages).Debug("fetched first page")

	data := appendPage(log, nil, 1, first)
	for page := 2; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return &FetchError{Page: page, Err: err}
		}
		p, err := s.fetcher.FetchPage(ctx, page, s.limit, s.order)
		if err != nil {
			return &FetchError{Page: page, Err: err}
		}
		data = appendPage(log, data, page, p)
	}

	s.mu.Lock()
	s.txns = data
	s.loaded = true
	s.loadedAt = s.now()
	s.mu.Unlock()

	log.WithFields(logrus.Fields{
		"transactions": len(data),
		"pages":        pages,
		"elapsed":      s.now().Sub(start).Round(time.Millisecond),
	}).Info("loaded transactions")
	return nil
}

func appendPage(log logrus.FieldLogger, data []model.Transaction, page int, p *model.Page) []model.Transaction {
	if p == nil || !p.HasData() {
		log.WithField("page", page).Warn("page response has no data, skipping")
		return data
	}
	log.WithFields(logrus.Fields{"page": page, "count": len(p.Data)}).Debug("fetched page")
	return append(data, p.Data...)
}

// All returns a copy of every stored transaction in fetch order.
func (s *Store) All() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// ByType returns the stored transactions of type t.
func (s *Store) ByType(t model.Type) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []model.Transaction
	for _, txn := range s.txns {
		if txn.Type == t {
			result = append(result, txn)
		}
	}
	return result
}

// Bought returns purchase transactions.
func (s *Store) Bought() []model.Transaction { return s.ByType(model.TypePurchase) }

// Sold returns credit transactions.
func (s *Store) Sold() []model.Transaction { return s.ByType(model.TypeCredit) }

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txns)
}

// Loaded reports whether a Load has completed, and when.
func (s *Store) Loaded() (bool, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded, s.loadedAt
}
