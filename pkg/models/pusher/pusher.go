package pusher

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, every PushInterval
// once started and on Stop.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	pushLock       sync.Mutex
	stop           chan struct{}
	done           chan struct{}
	once           sync.Once
	started        atomic.Bool
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll pushes the buffered messages. Messages are kept for the next attempt when
// PushLogic fails.
func (p *Pusher[T]) PushAll() error {
	p.pushLock.Lock()
	defer p.pushLock.Unlock()

	p.lock.Lock()
	batch := p.MessagesBuffer
	p.MessagesBuffer = nil
	p.lock.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := p.PushLogic(batch...); err != nil {
		p.lock.Lock()
		p.MessagesBuffer = append(batch, p.MessagesBuffer...)
		p.lock.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Size() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	if !p.started.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.stop:
				return
			}
		}
	}()
}

// Stop ends the push loop, if started, and pushes whatever is left.
func (p *Pusher[T]) Stop() error {
	p.once.Do(func() {
		close(p.stop)
	})

	if p.started.Load() {
		<-p.done
	}

	return p.PushAll()
}
