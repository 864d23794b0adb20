package audit

import (
	"sync"

	"go.uber.org/zap"
)

const queueSize = 100

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit events from a single background worker.
// Dispatch never blocks the request; a full queue drops the event.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event

	once sync.Once
	done chan struct{}
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.String("entity", ev.Entity),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for queued ones to be written.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
