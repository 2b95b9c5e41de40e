package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/aanand-mishra/people-registry/internal/types"
)

// EntityContext binds a Provider to a single file path.
//
// Add is a read-modify-write: load everything, append, save everything.
// Nothing stops a second writer from saving between the load and the save
// unless the context was built WithFileLock.
type EntityContext[T types.Record] struct {
	provider Provider[T]
	path     string
	lock     *sync.Mutex
}

// Option configures an EntityContext.
type Option func(*contextOptions)

type contextOptions struct {
	fileLock bool
}

// WithFileLock serializes GetAll, SaveAll and Add for the same file path
// within the current process. Contexts for different record types that
// share a path share the lock. Other processes are not excluded.
func WithFileLock() Option {
	return func(o *contextOptions) { o.fileLock = true }
}

// NewEntityContext returns a context that reads and writes path through
// provider.
func NewEntityContext[T types.Record](provider Provider[T], path string, opts ...Option) *EntityContext[T] {
	var o contextOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := &EntityContext[T]{provider: provider, path: path}
	if o.fileLock {
		c.lock = pathLock(path)
	}
	return c
}

// GetAll loads the full collection from the provider.
func (c *EntityContext[T]) GetAll() ([]T, error) {
	c.acquire()
	defer c.release()

	return c.load()
}

// SaveAll overwrites the stored collection with data.
func (c *EntityContext[T]) SaveAll(data []T) error {
	c.acquire()
	defer c.release()

	return c.save(data)
}

// Add loads the collection, appends entity and saves the result.
func (c *EntityContext[T]) Add(entity T) error {
	c.acquire()
	defer c.release()

	entities, err := c.load()
	if err != nil {
		return err
	}

	entities = append(entities, entity)
	slog.Debug("appending record",
		slog.String("type", entity.RecordType()),
		slog.String("path", c.path),
		slog.Int("count", len(entities)))

	return c.save(entities)
}

func (c *EntityContext[T]) load() ([]T, error) {
	data, err := c.provider.Load(c.path)
	if err != nil {
		return nil, fmt.Errorf("EntityContext: load %s: %w", c.path, err)
	}
	return data, nil
}

func (c *EntityContext[T]) save(data []T) error {
	if err := c.provider.Save(c.path, data); err != nil {
		return fmt.Errorf("EntityContext: save %s: %w", c.path, err)
	}
	return nil
}

func (c *EntityContext[T]) acquire() {
	if c.lock != nil {
		c.lock.Lock()
	}
}

func (c *EntityContext[T]) release() {
	if c.lock != nil {
		c.lock.Unlock()
	}
}

// fileLocks maps a cleaned absolute path to its mutex.
var fileLocks sync.Map

func pathLock(path string) *sync.Mutex {
	key := filepath.Clean(path)
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}

	mu, _ := fileLocks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
