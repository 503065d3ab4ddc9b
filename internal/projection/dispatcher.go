// Package projection applies derived writes (search index, cache) after the
// authoritative store has committed. Writes are fire-and-forget for the
// caller: a bounded queue feeds a fixed set of workers, and tasks with the
// same key always run on the same worker so they apply in submission order.
package projection

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/discussion-backend/internal/config"
	"github.com/heartmarshall/discussion-backend/pkg/ctxutil"
)

var (
	droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "discussion_projection_dropped_total",
		Help: "Projection tasks dropped because the queue was full or closed.",
	})

	failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discussion_projection_failures_total",
		Help: "Projection steps that returned an error, by target.",
	}, []string{"target"})

	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discussion_projection_steps_total",
		Help: "Projection steps executed, by target.",
	}, []string{"target"})
)

// Step is one derived write of a task. Target names the store it writes to.
type Step struct {
	Target string
	Fn     func(ctx context.Context) error
}

type task struct {
	ctx   context.Context
	key   string
	steps []Step
}

// Dispatcher runs projection tasks on a fixed pool of workers.
type Dispatcher struct {
	log         *slog.Logger
	taskTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	queues []chan task
	group  *errgroup.Group
}

// NewDispatcher starts cfg.Workers workers sharing cfg.QueueSize queue slots.
func NewDispatcher(log *slog.Logger, cfg config.ProjectionConfig) *Dispatcher {
	workers := max(cfg.Workers, 1)
	perWorker := max(cfg.QueueSize/workers, 1)

	d := &Dispatcher{
		log:         log.With("component", "projection"),
		taskTimeout: cfg.TaskTimeout,
		queues:      make([]chan task, workers),
		group:       &errgroup.Group{},
	}

	for i := range d.queues {
		q := make(chan task, perWorker)
		d.queues[i] = q
		d.group.Go(func() error {
			for t := range q {
				d.run(t)
			}
			return nil
		})
	}

	return d
}

// Submit enqueues steps under key without blocking. Request-scoped values of
// ctx (request id, user id) are kept for logging; its cancellation is not.
// It reports false if the task was dropped.
func (d *Dispatcher) Submit(ctx context.Context, key string, steps ...Step) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ctx, key, "dispatcher closed")
		return false
	}

	t := task{ctx: context.WithoutCancel(ctx), key: key, steps: steps}
	select {
	case d.queues[d.shard(key)] <- t:
		return true
	default:
		d.drop(ctx, key, "queue full")
		return false
	}
}

// Close stops accepting tasks and waits for queued tasks to finish or for
// ctx to expire, whichever comes first.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for _, q := range d.queues {
			close(q)
		}
	}
	d.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- d.group.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run(t task) {
	ctx, cancel := context.WithTimeout(t.ctx, d.taskTimeout)
	defer cancel()

	for _, s := range t.steps {
		stepsTotal.WithLabelValues(s.Target).Inc()
		if err := s.Fn(ctx); err != nil {
			failuresTotal.WithLabelValues(s.Target).Inc()
			attrs := append([]slog.Attr{
				slog.String("key", t.key),
				slog.String("target", s.Target),
				slog.String("error", err.Error()),
			}, ctxutil.LogAttrs(ctx)...)
			d.log.LogAttrs(ctx, slog.LevelError, "projection step failed", attrs...)
		}
	}
}

func (d *Dispatcher) drop(ctx context.Context, key, reason string) {
	droppedTotal.Inc()
	d.log.WarnContext(ctx, "projection task dropped",
		slog.String("key", key),
		slog.String("reason", reason),
	)
}

func (d *Dispatcher) shard(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.queues)))
}
