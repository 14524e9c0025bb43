// Package memory implements the per-conversation shared memory store.
// Agents within a workflow exchange data through this store: each
// conversation owns a keyed map of JSON-representable values, writes
// serialise per conversation, and reads observe deep-copied snapshots
// so readers never block writers.
package memory

import (
	"sync"
	"sync/atomic"

	"github.com/scriptor-ai/scriptor/pkg/fault"
	"github.com/scriptor-ai/scriptor/pkg/models"
)

// Recognised shared-memory keys. Agents may stash arbitrary additional
// keys; only these carry cross-agent meaning.
const (
	KeyActiveEditor      = "active_editor"
	KeyReferencedContext = "referenced_context"
	KeySearchHistory     = "search_history"
	KeySearchResults     = "search_results"
	KeyConfidenceLevel   = "confidence_level"
	KeyToolsUsed         = "tools_used"
	KeyMessages          = "messages"
)

// appendKeys are merged with append semantics: incoming list elements
// are appended to the existing list. Every other key is replaced.
var appendKeys = map[string]bool{
	KeySearchHistory: true,
	KeyToolsUsed:     true,
	KeyMessages:      true,
}

type conversationMemory struct {
	mu      sync.RWMutex
	ownerID string
	data    map[string]any
}

// Stats is a point-in-time snapshot of store counters.
type Stats struct {
	Conversations int   `json:"conversations"`
	Hits          int64 `json:"hits"`
	Misses        int64 `json:"misses"`
	Writes        int64 `json:"writes"`
}

// Store holds one memory map per registered conversation. The registry
// map has its own lock; per-conversation locks never nest with it held
// for writing, so cross-conversation operations cannot contend.
type Store struct {
	mu            sync.RWMutex
	conversations map[string]*conversationMemory

	hits   atomic.Int64
	misses atomic.Int64
	writes atomic.Int64
}

// NewStore creates an empty shared memory store.
func NewStore() *Store {
	return &Store{
		conversations: make(map[string]*conversationMemory),
	}
}

// Register creates the memory map for a conversation and records its
// owner. Registering an existing conversation is a no-op.
func (s *Store) Register(conversationID, ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conversations[conversationID]; ok {
		return
	}
	s.conversations[conversationID] = &conversationMemory{
		ownerID: ownerID,
		data:    make(map[string]any),
	}
}

// Unregister drops a conversation's memory. Used when the conversation
// is destroyed.
func (s *Store) Unregister(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, conversationID)
}

func (s *Store) lookup(principal models.Principal, conversationID string) (*conversationMemory, error) {
	s.mu.RLock()
	cm, ok := s.conversations[conversationID]
	s.mu.RUnlock()
	if !ok {
		return nil, fault.New(fault.KindNotFound, "conversation %s not registered", conversationID)
	}
	if !principal.CanAccess(cm.ownerID) {
		return nil, fault.New(fault.KindAccessDenied, "principal %s does not own conversation %s", principal.UserID, conversationID)
	}
	return cm, nil
}

// Get returns the value for one key. The second return distinguishes
// an absent key from a stored nil.
func (s *Store) Get(principal models.Principal, conversationID, key string) (any, bool, error) {
	cm, err := s.lookup(principal, conversationID)
	if err != nil {
		return nil, false, err
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	v, ok := cm.data[key]
	if !ok {
		s.misses.Add(1)
		return nil, false, nil
	}
	s.hits.Add(1)
	return deepCopyValue(v), true, nil
}

// Put stores one key. The value is deep-copied on the way in so the
// caller cannot mutate stored state afterwards.
func (s *Store) Put(principal models.Principal, conversationID, key string, value any) error {
	cm, err := s.lookup(principal, conversationID)
	if err != nil {
		return err
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.data[key] = deepCopyValue(value)
	s.writes.Add(1)
	return nil
}

// Merge applies a patch atomically: the whole patch lands or none of
// it does, and no reader observes a partially merged state. Merging is
// shallow; lists replace unless the key is on the append allow-list.
func (s *Store) Merge(principal models.Principal, conversationID string, patch map[string]any) error {
	cm, err := s.lookup(principal, conversationID)
	if err != nil {
		return err
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	for key, incoming := range patch {
		if appendKeys[key] {
			cm.data[key] = appendLists(cm.data[key], incoming)
			continue
		}
		cm.data[key] = deepCopyValue(incoming)
	}
	s.writes.Add(1)
	return nil
}

// Delete removes one key. Deleting an absent key is a no-op.
func (s *Store) Delete(principal models.Principal, conversationID, key string) error {
	cm, err := s.lookup(principal, conversationID)
	if err != nil {
		return err
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	delete(cm.data, key)
	s.writes.Add(1)
	return nil
}

// Snapshot returns a deep copy of the whole conversation memory. The
// copy is detached: later writes to the store do not show through,
// which is what keeps active_editor stable across one workflow (I7).
func (s *Store) Snapshot(principal models.Principal, conversationID string) (map[string]any, error) {
	cm, err := s.lookup(principal, conversationID)
	if err != nil {
		return nil, err
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	out := make(map[string]any, len(cm.data))
	for k, v := range cm.data {
		out[k] = deepCopyValue(v)
	}
	return out, nil
}

// Stats returns current counters.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	n := len(s.conversations)
	s.mu.RUnlock()
	return Stats{
		Conversations: n,
		Hits:          s.hits.Load(),
		Misses:        s.misses.Load(),
		Writes:        s.writes.Load(),
	}
}

// appendLists implements append semantics for allow-listed keys. When
// either side is not a list the incoming value replaces the existing.
func appendLists(existing, incoming any) any {
	ex, okE := existing.([]any)
	in, okI := asList(incoming)
	if !okI {
		return deepCopyValue(incoming)
	}
	if !okE {
		ex = nil
	}
	out := make([]any, 0, len(ex)+len(in))
	for _, v := range ex {
		out = append(out, deepCopyValue(v))
	}
	for _, v := range in {
		out = append(out, deepCopyValue(v))
	}
	return out
}

func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

// deepCopyValue copies the JSON-representable subset of Go values.
// Scalars and unknown types pass through by value; maps and slices
// copy recursively.
func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopyValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopyValue(val)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, m := range t {
			out[i] = deepCopyValue(m).(map[string]any)
		}
		return out
	default:
		return v
	}
}
