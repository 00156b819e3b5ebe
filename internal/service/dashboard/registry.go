package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"projectboard/internal/domain/models"
	"projectboard/internal/domain/repositories"
	"projectboard/internal/domain/services"
)

// maxSweepInterval bounds how long an idle store can outlive its TTL
const maxSweepInterval = time.Minute

// RegistryConfig controls store lifetimes. Zero durations disable the
// matching behavior.
type RegistryConfig struct {
	// IdleTTL evicts a store nobody has asked for in this long
	IdleTTL time.Duration

	// StaleAfter makes FreshStoreFor reload a store whose last successful
	// load is older than this
	StaleAfter time.Duration

	// Now replaces time.Now, for the registry and the stores it creates
	Now func() time.Time
}

type registryEntry struct {
	store      *Store
	lastAccess time.Time
}

// Registry keeps one Store per signed-in session.
type Registry struct {
	repo   repositories.ProjectRepository
	logger *slog.Logger
	cfg    RegistryConfig
	now    func() time.Time
	opts   []Option

	mu        sync.Mutex
	entries   map[string]*registryEntry
	lastSweep time.Time
}

var _ services.StoreProvider = (*Registry)(nil)

// NewRegistry creates an empty registry. opts are applied to every store it creates.
func NewRegistry(repo repositories.ProjectRepository, logger *slog.Logger, cfg RegistryConfig, opts ...Option) *Registry {
	now := cfg.Now
	if now == nil {
		now = time.Now
	} else {
		opts = append([]Option{WithClock(now)}, opts...)
	}

	return &Registry{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		now:       now,
		opts:      opts,
		entries:   make(map[string]*registryEntry),
		lastSweep: now(),
	}
}

// StoreFor returns the session's store. A new store is loaded before it is
// returned; a failed first load leaves it in the error state for the user
// to retry.
func (r *Registry) StoreFor(ctx context.Context, session models.Session) services.ProjectListStore {
	store, _ := r.storeFor(ctx, session)
	return store
}

// FreshStoreFor is StoreFor, except that an existing store is reloaded first
// when its data is older than the staleness window. A failed reload keeps
// the previous collection and puts the store in the error state.
func (r *Registry) FreshStoreFor(ctx context.Context, session models.Session) services.ProjectListStore {
	store, created := r.storeFor(ctx, session)
	if created || r.cfg.StaleAfter <= 0 {
		return store
	}

	if r.now().Sub(store.LoadedAt()) > r.cfg.StaleAfter {
		r.logger.Debug("reloading stale dashboard store", "key", session.Key())
		// error is recorded on the store
		_ = store.Load(ctx)
	}
	return store
}

func (r *Registry) storeFor(ctx context.Context, session models.Session) (*Store, bool) {
	key := session.Key()
	now := r.now()

	r.mu.Lock()
	r.sweepLocked(now)
	entry, ok := r.entries[key]
	if !ok {
		entry = &registryEntry{store: NewStore(r.repo, session, r.logger, r.opts...)}
		r.entries[key] = entry
	}
	entry.lastAccess = now
	r.mu.Unlock()

	if !ok {
		r.logger.Debug("dashboard store created", "key", key)
		// error is recorded on the store
		_ = entry.store.Load(ctx)
	}

	return entry.store, !ok
}

// sweepLocked evicts stores idle for longer than IdleTTL. It runs at most
// once per sweep interval.
func (r *Registry) sweepLocked(now time.Time) {
	ttl := r.cfg.IdleTTL
	if ttl <= 0 {
		return
	}

	interval := min(ttl, maxSweepInterval)
	if now.Sub(r.lastSweep) < interval {
		return
	}
	r.lastSweep = now

	for key, entry := range r.entries {
		if now.Sub(entry.lastAccess) > ttl {
			delete(r.entries, key)
			r.logger.Debug("dashboard store evicted", "key", key, "idle", now.Sub(entry.lastAccess))
		}
	}
}

// Drop forgets the session's store
func (r *Registry) Drop(session models.Session) {
	r.mu.Lock()
	delete(r.entries, session.Key())
	r.mu.Unlock()
}

// Len returns the number of live stores
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
