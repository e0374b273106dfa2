package usecase

import (
	"strings"
	"sync"
)

// Registry holds the currently connected streams: a set of admin streams and
// a mapping from normalized resident identifier to that resident's streams.
//
// Invariants:
//   - a resident key exists iff it has at least one open stream; empty sets
//     are deleted immediately so stale keys never accumulate
//   - a stream lives in at most one place and is removed from exactly that
//     place on unregister
//
// Unregistering a stream that is not present is a silent no-op; a close and
// an error signal may both fire for one disconnect.
type Registry struct {
	mu        sync.RWMutex
	admins    map[*Stream]struct{}
	residents map[string]map[*Stream]struct{}
}

// NewRegistry creates an empty Registry. The registry is the only shared
// mutable state of the events domain; it is owned by the application root
// and injected into the usecase.
func NewRegistry() *Registry {
	return &Registry{
		admins:    make(map[*Stream]struct{}),
		residents: make(map[string]map[*Stream]struct{}),
	}
}

func normalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

// RegisterAdmin adds a stream to the admin set. Set semantics: registering
// the same stream twice is idempotent.
func (r *Registry) RegisterAdmin(s *Stream) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[s] = struct{}{}
}

// RegisterResident adds a stream under the normalized identifier, creating
// the resident's set if absent.
func (r *Registry) RegisterResident(identifier string, s *Stream) {
	key := normalizeIdentifier(identifier)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.residents[key]; !ok {
		r.residents[key] = make(map[*Stream]struct{})
	}
	r.residents[key][s] = struct{}{}
}

// UnregisterAdmin removes a stream from the admin set.
func (r *Registry) UnregisterAdmin(s *Stream) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.admins, s)
}

// UnregisterResident removes a stream from the resident's set and deletes
// the mapping entry once the set is empty.
func (r *Registry) UnregisterResident(identifier string, s *Stream) {
	key := normalizeIdentifier(identifier)

	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.residents[key]
	if !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(r.residents, key)
	}
}

// AdminStreams returns a snapshot of the admin set for publishing.
func (r *Registry) AdminStreams() []*Stream {
	r.mu.RLock()
	defer r.mu.RUnlock()
	streams := make([]*Stream, 0, len(r.admins))
	for s := range r.admins {
		streams = append(streams, s)
	}
	return streams
}

// ResidentStreams returns a snapshot of one resident's streams. An absent
// identifier yields an empty slice.
func (r *Registry) ResidentStreams(identifier string) []*Stream {
	key := normalizeIdentifier(identifier)

	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.residents[key]
	if !ok {
		return nil
	}
	streams := make([]*Stream, 0, len(set))
	for s := range set {
		streams = append(streams, s)
	}
	return streams
}

// AllStreams returns a snapshot of every registered stream (for shutdown).
func (r *Registry) AllStreams() []*Stream {
	r.mu.RLock()
	defer r.mu.RUnlock()
	streams := make([]*Stream, 0, len(r.admins))
	for s := range r.admins {
		streams = append(streams, s)
	}
	for _, set := range r.residents {
		for s := range set {
			streams = append(streams, s)
		}
	}
	return streams
}

// Counts returns the number of admin streams, resident streams, and unique
// residents currently registered.
func (r *Registry) Counts() (admins, residents, uniqueResidents int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	admins = len(r.admins)
	for _, set := range r.residents {
		residents += len(set)
	}
	uniqueResidents = len(r.residents)
	return admins, residents, uniqueResidents
}
