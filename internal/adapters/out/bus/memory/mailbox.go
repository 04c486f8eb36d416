package memory

import "sync"

// mailbox buffers messages without bound and feeds them to out in order.
type mailbox struct {
	mu      sync.Mutex
	pending [][]byte
	wake    chan struct{}
	out     chan []byte
	closed  chan struct{}
	once    sync.Once
	onClose func(*mailbox)
}

func newMailbox(onClose func(*mailbox)) *mailbox {
	mb := &mailbox{
		wake:    make(chan struct{}, 1),
		out:     make(chan []byte),
		closed:  make(chan struct{}),
		onClose: onClose,
	}
	go mb.pump()
	return mb
}

func (mb *mailbox) Messages() <-chan []byte {
	return mb.out
}

// Close unsubscribes and ends the feed.
func (mb *mailbox) Close() error {
	mb.once.Do(func() {
		if mb.onClose != nil {
			mb.onClose(mb)
		}
		close(mb.closed)
	})
	return nil
}

// shutdown ends the feed without touching the hub, which already dropped it.
func (mb *mailbox) shutdown() {
	mb.once.Do(func() {
		close(mb.closed)
	})
}

func (mb *mailbox) push(payload []byte) {
	mb.mu.Lock()
	mb.pending = append(mb.pending, payload)
	mb.mu.Unlock()

	select {
	case mb.wake <- struct{}{}:
	default:
	}
}

func (mb *mailbox) pump() {
	defer close(mb.out)

	for {
		mb.mu.Lock()
		batch := mb.pending
		mb.pending = nil
		mb.mu.Unlock()

		for _, payload := range batch {
			select {
			case mb.out <- payload:
			case <-mb.closed:
				return
			}
		}

		select {
		case <-mb.wake:
		case <-mb.closed:
			return
		}
	}
}
