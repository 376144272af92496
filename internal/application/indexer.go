package application

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/internal/domain/entity"
	"github.com/oksasatya/famjamjam/pkg/helpers"
)

const indexTimeout = 3 * time.Second

// DebouncedIndexer coalesces bursts of writes to the same group into one
// index request, sent wait after the last write. A group leaves pending once
// its request is sent.
type DebouncedIndexer struct {
	index  GroupIndex
	clock  clockwork.Clock
	wait   time.Duration
	logger *logrus.Logger

	mu      sync.Mutex
	pending map[string]*pendingIndex
}

type pendingIndex struct {
	schedule func(entity.Group)
}

func NewDebouncedIndexer(index GroupIndex, wait time.Duration, clock clockwork.Clock, logger *logrus.Logger) *DebouncedIndexer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DebouncedIndexer{
		index:   index,
		clock:   clock,
		wait:    wait,
		logger:  logger,
		pending: make(map[string]*pendingIndex),
	}
}

// Schedule queues g for indexing. A later call for the same group id replaces it.
func (d *DebouncedIndexer) Schedule(g entity.Group) {
	if d == nil || d.index == nil {
		return
	}
	d.mu.Lock()
	p, ok := d.pending[g.ID]
	if !ok {
		p = &pendingIndex{}
		p.schedule = helpers.DebounceWithClock(d.clock, func(g entity.Group) { d.flush(p, g) }, d.wait)
		d.pending[g.ID] = p
	}
	d.mu.Unlock()
	p.schedule(g)
}

func (d *DebouncedIndexer) flush(p *pendingIndex, g entity.Group) {
	d.mu.Lock()
	if d.pending[g.ID] == p {
		delete(d.pending, g.ID)
	}
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()
	if err := d.index.Index(ctx, g); err != nil {
		groupIndexFailures.Add(1)
		helpers.LogWarn(d.logger, "es index failed", err, logrus.Fields{"group_id": g.ID})
		return
	}
	groupsIndexed.Add(1)
}
