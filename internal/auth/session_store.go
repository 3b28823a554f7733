package auth

import (
	"context"
	"encoding/json"
	"log"

	"papi/internal/datastore"
	"papi/internal/model"
	"papi/internal/store"
)

// SessionStoreInterface defines the interface for session persistence.
type SessionStoreInterface interface {
	Save(ctx context.Context, sessionID string, session model.Session) bool
	Get(ctx context.Context, sessionID string) *model.Session
	Delete(ctx context.Context, sessionID string)
}

// SessionStore persists session records in the blob store, one key per
// session id.
type SessionStore struct {
	kv store.Store
}

// Ensure SessionStore implements SessionStoreInterface.
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(kv store.Store) *SessionStore {
	return &SessionStore{kv: kv}
}

func sessionKey(sessionID string) string {
	return datastore.KeySessionPrefix + sessionID
}

// Save persists the session record and reports success.
func (s *SessionStore) Save(ctx context.Context, sessionID string, session model.Session) bool {
	data, err := json.Marshal(session)
	if err != nil {
		log.Printf("session: marshal %s: %v", sessionID, err)
		return false
	}
	if err := s.kv.Set(ctx, sessionKey(sessionID), data); err != nil {
		log.Printf("session: save %s: %v", sessionID, err)
		return false
	}
	return true
}

// Get returns the persisted session, or nil when it is absent, unreadable or
// expired. An expired record is purged here; this lazy check is the only place
// a stale session is invalidated.
func (s *SessionStore) Get(ctx context.Context, sessionID string) *model.Session {
	data, err := s.kv.Get(ctx, sessionKey(sessionID))
	if err != nil {
		log.Printf("session: load %s: %v", sessionID, err)
		return nil
	}
	if data == nil {
		return nil
	}
	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("session: malformed record %s: %v", sessionID, err)
		s.Delete(ctx, sessionID)
		return nil
	}
	if session.Expired() {
		s.Delete(ctx, sessionID)
		return nil
	}
	return &session
}

// Delete removes the persisted session. Deleting an absent session is a no-op.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) {
	if err := s.kv.Delete(ctx, sessionKey(sessionID)); err != nil {
		log.Printf("session: delete %s: %v", sessionID, err)
	}
}
