package media

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// BlobDeleter removes a stored object by the public location it was saved
// under.
type BlobDeleter interface {
	Delete(ctx context.Context, location string) error
}

// CleanerConfig controls the concurrency characteristics of the cleaner.
type CleanerConfig struct {
	QueueSize int
	Workers   int
}

// Cleaner asynchronously deletes replaced blobs, such as an old avatar after
// the user uploads a new one. Deletion failures are logged and dropped; the
// orphaned blob is the acceptable cost of keeping the request path fast.
type Cleaner struct {
	deleter BlobDeleter
	logger  *slog.Logger

	jobs   chan string
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var errCleanerClosed = errors.New("blob cleaner closed")

// NewCleaner constructs a background worker pool that deletes blobs.
func NewCleaner(deleter BlobDeleter, cfg CleanerConfig, logger *slog.Logger) *Cleaner {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 16
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Cleaner{
		deleter: deleter,
		logger:  logger,
		jobs:    make(chan string, cfg.QueueSize),
		ctx:     ctx,
		cancel:  cancel,
	}

	c.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go c.worker()
	}

	return c
}

// Enqueue schedules deletion of the blob at location. Blank locations are
// ignored so callers can pass a possibly-unset previous URL directly.
func (c *Cleaner) Enqueue(ctx context.Context, location string) error {
	if location == "" {
		return nil
	}

	// The read lock keeps Shutdown from closing the queue mid-send; workers
	// keep draining, so a send on a full queue still completes.
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errCleanerClosed
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.jobs <- location:
		return nil
	}
}

// Shutdown closes the queue and waits for the workers to drain every pending
// deletion. When ctx expires first the remaining jobs are abandoned and the
// context error is returned.
func (c *Cleaner) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.jobs)
	}
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		c.cancel()
		return ctx.Err()
	case <-done:
		c.cancel()
		return nil
	}
}

func (c *Cleaner) worker() {
	defer c.wg.Done()

	for location := range c.jobs {
		if c.ctx.Err() != nil {
			c.logger.Warn("drop blob deletion, shutdown deadline passed", "location", location)
			continue
		}
		c.deleteBlob(location)
	}
}

func (c *Cleaner) deleteBlob(location string) {
	if c.deleter == nil {
		c.logger.Error("blob cleaner missing deleter")
		return
	}

	ctx, cancel := context.WithTimeout(c.ctx, 30*time.Second)
	defer cancel()

	if err := c.deleter.Delete(ctx, location); err != nil {
		c.logger.Error("delete replaced blob", "location", location, "error", err)
	}
}
