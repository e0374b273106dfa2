package usecase

import (
	"sync"

	"condopay-srv/internal/events"

	"github.com/gin-contrib/sse"
)

// Stream is one open server-to-client push channel. It is created on
// subscribe and destroyed on the first close signal; a stream is never
// reused across connections.
type Stream struct {
	role       events.Role
	identifier string

	// mu serializes writes so events published to one stream keep their
	// publish-call order on the wire.
	mu sync.Mutex
	w  events.EventWriter

	done      chan struct{}
	closeOnce sync.Once
}

func newStream(role events.Role, identifier string, w events.EventWriter) *Stream {
	return &Stream{
		role:       role,
		identifier: identifier,
		w:          w,
		done:       make(chan struct{}),
	}
}

// Send serializes the event and writes it to the transport, flushing
// immediately. The JSON body duplicates the event type under "type".
// A write failure marks the stream closed so later publishes skip it;
// deregistration stays with the lifecycle owner.
func (s *Stream) Send(eventType string, payload events.Payload) error {
	select {
	case <-s.done:
		return events.ErrStreamClosed
	default:
	}

	body := make(map[string]any, len(payload)+1)
	body["type"] = eventType
	for k, v := range payload {
		body[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := sse.Encode(s.w, sse.Event{Event: eventType, Data: body}); err != nil {
		s.close()
		return err
	}
	s.w.Flush()
	return nil
}

// Done is closed once the stream will accept no further writes.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// close marks the stream closed. Guarded so the three possible triggers
// (client disconnect, write error, server shutdown) execute it at most once.
func (s *Stream) close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
