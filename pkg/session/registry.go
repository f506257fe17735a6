package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/devportal/pkg/cache"
)

// Visitor is one browser's claim on a Store.
type Visitor struct {
	Store *Store
	ID    string // stable for the visitor's lifetime, safe to log
}

// Registry owns the stores of all visitors, keyed by an opaque cookie token.
type Registry interface {
	// Create registers a new visitor with an unauthenticated store.
	Create(ctx context.Context) (token string, v *Visitor, err error)

	// Get returns the visitor for a token.
	// Returns ErrNotFound if the token is unknown or idle for too long.
	Get(ctx context.Context, token string) (*Visitor, error)

	// Rotate issues a new token for the visitor and invalidates the old one.
	Rotate(ctx context.Context, token string) (string, error)

	// Delete forgets a visitor. Unknown tokens are ignored.
	Delete(ctx context.Context, token string) error

	// Len returns the number of live visitors.
	Len() int

	// Close stops background work. Close is idempotent.
	Close() error
}

// Default registry configuration.
const (
	defaultIdleTTL         = 24 * time.Hour
	defaultCleanupInterval = time.Minute
)

// MemoryOption configures a MemoryRegistry.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	idleTTL         time.Duration
	cleanupInterval time.Duration
	maxVisitors     int
}

// WithIdleTTL sets how long a visitor survives without requests.
// Default: 24 hours.
func WithIdleTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		if d > 0 {
			o.idleTTL = d
		}
	}
}

// WithCleanupInterval sets how often idle visitors are swept.
// Zero disables the background sweep; idle visitors are then dropped lazily on Get.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		if d >= 0 {
			o.cleanupInterval = d
		}
	}
}

// WithMaxVisitors caps the number of visitors kept in memory.
// When the cap is reached the least recently seen visitor is dropped.
// Zero means unlimited.
func WithMaxVisitors(n int) MemoryOption {
	return func(o *memoryOptions) {
		if n >= 0 {
			o.maxVisitors = n
		}
	}
}

// MemoryRegistry keeps visitors in process memory.
// Nothing survives a restart.
//
// Visitors live in a cache with sliding expiration, so every Get restarts
// the idle deadline, and with an LRU cap when WithMaxVisitors is set.
type MemoryRegistry struct {
	visitors *cache.Memory[*Visitor]
	nowFunc  func() time.Time
	mu       sync.Mutex // serializes Rotate
}

// NewMemoryRegistry creates an in-memory registry.
//
// Example:
//
//	reg := session.NewMemoryRegistry(
//	    session.WithIdleTTL(12 * time.Hour),
//	    session.WithMaxVisitors(100_000),
//	)
//	defer reg.Close()
func NewMemoryRegistry(opts ...MemoryOption) *MemoryRegistry {
	o := memoryOptions{
		idleTTL:         defaultIdleTTL,
		cleanupInterval: defaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &MemoryRegistry{nowFunc: time.Now}
	r.visitors = cache.NewMemory[*Visitor](
		cache.WithDefaultTTL(o.idleTTL),
		cache.WithSlidingExpiration(),
		cache.WithCleanupInterval(o.cleanupInterval),
		cache.WithMaxEntries(o.maxVisitors),
		cache.WithClock(func() time.Time { return r.nowFunc() }),
	)

	return r
}

// Create registers a new unauthenticated visitor.
func (r *MemoryRegistry) Create(ctx context.Context) (string, *Visitor, error) {
	token, err := generateToken()
	if err != nil {
		return "", nil, err
	}

	v := &Visitor{ID: uuid.NewString(), Store: NewStore()}
	if err := r.visitors.Set(ctx, token, v, 0); err != nil {
		return "", nil, registryError(err)
	}

	return token, v, nil
}

// Get returns the visitor and extends its idle deadline.
func (r *MemoryRegistry) Get(ctx context.Context, token string) (*Visitor, error) {
	v, err := r.visitors.Get(ctx, token)
	if err != nil {
		return nil, registryError(err)
	}
	return v, nil
}

// Rotate re-keys the visitor under a fresh token.
func (r *MemoryRegistry) Rotate(ctx context.Context, token string) (string, error) {
	newToken, err := generateToken()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, err := r.visitors.Get(ctx, token)
	if err != nil {
		return "", registryError(err)
	}
	if err := r.visitors.Delete(ctx, token); err != nil {
		return "", registryError(err)
	}
	if err := r.visitors.Set(ctx, newToken, v, 0); err != nil {
		return "", registryError(err)
	}

	return newToken, nil
}

// Delete forgets a visitor.
func (r *MemoryRegistry) Delete(ctx context.Context, token string) error {
	return registryError(r.visitors.Delete(ctx, token))
}

// Len returns the number of visitors, including idle ones not yet swept.
func (r *MemoryRegistry) Len() int {
	return r.visitors.Len()
}

// Close stops the background sweep.
func (r *MemoryRegistry) Close() error {
	return r.visitors.Close()
}

func (r *MemoryRegistry) deleteExpired() {
	r.visitors.DeleteExpired()
}

// registryError maps cache errors onto the registry's sentinels.
func registryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cache.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, cache.ErrClosed):
		return ErrClosed
	default:
		return err
	}
}

// generateToken creates a cryptographically secure random token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

var _ Registry = (*MemoryRegistry)(nil)
