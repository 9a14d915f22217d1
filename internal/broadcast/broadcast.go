// Package broadcast fans activity messages out to server-sent event
// subscribers.
package broadcast

import (
	"sync"
)

type FeedMessage struct {
	Event string
	Msg   string
}

type Broadcaster struct {
	Mu      sync.Mutex
	Clients map[chan FeedMessage]bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		Clients: make(map[chan FeedMessage]bool),
	}
}

func (b *Broadcaster) Subscribe() chan FeedMessage {
	ch := make(chan FeedMessage, 10)
	b.Mu.Lock()
	b.Clients[ch] = true
	b.Mu.Unlock()
	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan FeedMessage) {
	b.Mu.Lock()
	delete(b.Clients, ch)
	b.Mu.Unlock()
	close(ch)
}

func (b *Broadcaster) Len() int {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	return len(b.Clients)
}

// Publish delivers the message to every subscriber with room for it.
func (b *Broadcaster) Publish(event string, message string) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		select {
		case ch <- FeedMessage{Event: event, Msg: message}:
		default:
			// skip clients with full data channels
		}
	}
}
