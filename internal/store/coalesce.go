package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/curiata/coreiq/internal/model"
)

// Coalescer wraps a Store and collapses rapid successive saves of the same
// audit into one write per window. The answer wizard saves on every slider
// move; only the last state within the window reaches the database. All
// other Store methods pass through, so reads during an open window can miss
// the pending write. Callers that need read-your-writes call Flush first.
type Coalescer struct {
	Store
	window time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
	closed  bool
}

type pendingSave struct {
	timer *time.Timer
	audit *model.Audit
}

// NewCoalescer wraps inner with a write window. A zero or negative window
// disables coalescing; saves then write through immediately.
func NewCoalescer(inner Store, window time.Duration) *Coalescer {
	return &Coalescer{
		Store:   inner,
		window:  window,
		pending: make(map[string]*pendingSave),
	}
}

// SaveAudit schedules a write. The audit is snapshotted at call time so
// mutations made by the caller after this returns do not leak into the
// scheduled write; the last snapshot within the window wins.
func (c *Coalescer) SaveAudit(ctx context.Context, a *model.Audit) error {
	if c.window <= 0 {
		return c.Store.SaveAudit(ctx, a)
	}

	snap, err := cloneAudit(a)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.Store.SaveAudit(ctx, snap)
	}

	if p, ok := c.pending[a.ID]; ok {
		p.audit = snap
		p.timer.Reset(c.window)
		return nil
	}

	id := a.ID
	p := &pendingSave{audit: snap}
	p.timer = time.AfterFunc(c.window, func() { c.fire(id) })
	c.pending[id] = p
	return nil
}

func (c *Coalescer) fire(id string) {
	c.mu.Lock()
	p, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	c.mu.Unlock()
	if !ok {
		return
	}

	if err := c.Store.SaveAudit(context.Background(), p.audit); err != nil {
		zap.L().Error("coalesced audit save failed",
			zap.String("audit_id", id),
			zap.Error(err))
	}
}

// Flush writes every pending audit immediately and clears the window.
func (c *Coalescer) Flush(ctx context.Context) error {
	c.mu.Lock()
	saves := make([]*model.Audit, 0, len(c.pending))
	for id, p := range c.pending {
		p.timer.Stop()
		saves = append(saves, p.audit)
		delete(c.pending, id)
	}
	c.mu.Unlock()

	for _, a := range saves {
		if err := c.Store.SaveAudit(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// Close drains pending writes before closing the inner store.
func (c *Coalescer) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	if err := c.Flush(context.Background()); err != nil {
		c.Store.Close()
		return err
	}
	return c.Store.Close()
}

func cloneAudit(a *model.Audit) (*model.Audit, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, eris.Wrap(err, "store: snapshot audit")
	}
	return unpackAudit(raw)
}
