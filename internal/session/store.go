package session

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/omaatv/eticaret-projem/internal/storage"
)

// StorageKey is the slot the current identity is persisted under.
const StorageKey = "arisport_user"

// Store owns the authenticated identity. Login and Register are the only
// blocking operations; both delegate the credential check to the injected
// Authenticator and honor context cancellation.
type Store struct {
	mu      sync.Mutex
	user    *User
	auth    Authenticator
	storage storage.Storage
	log     *zap.Logger
}

// NewStore rehydrates the identity from storage. A malformed blob is
// deleted and the store starts anonymous; rehydration never fails.
func NewStore(st storage.Storage, auth Authenticator, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{auth: auth, storage: st, log: log}

	data, err := st.Load(StorageKey)
	if err != nil {
		return s
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warn("clearing malformed session state", zap.Error(err))
		if err := st.Delete(StorageKey); err != nil {
			s.log.Warn("failed to clear session state", zap.Error(err))
		}
		return s
	}
	s.user = &user
	return s
}

// Login signs the user in. Both email and password must be non-empty; the
// credential check itself is delegated to the Authenticator.
func (s *Store) Login(ctx context.Context, email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, ErrCredentialsRequired
	}

	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.persist()
	return user, nil
}

// Register creates and signs in a new customer identity. All three fields
// must be non-empty.
func (s *Store) Register(ctx context.Context, name, email, password string) (User, error) {
	if name == "" || email == "" || password == "" {
		return User{}, ErrFieldsRequired
	}

	user, err := s.auth.Register(ctx, name, email, password)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.persist()
	return user, nil
}

// Logout clears the identity and wipes the persisted session state.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.storage.Delete(StorageKey); err != nil {
		s.log.Warn("failed to wipe session state", zap.Error(err))
	}
}

// Current returns the identity, if any.
func (s *Store) Current() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// IsAuthenticated and IsAdmin are the only authorization primitives;
// route guards consume these two booleans and nothing else.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

func (s *Store) IsAdmin() bool {
	user, ok := s.Current()
	return ok && user.IsAdmin()
}

// persist writes the identity under the fixed key. Caller holds the lock.
func (s *Store) persist() {
	data, err := json.Marshal(s.user)
	if err != nil {
		s.log.Warn("failed to encode session state", zap.Error(err))
		return
	}
	if err := s.storage.Save(StorageKey, data); err != nil {
		s.log.Warn("failed to persist session state", zap.Error(err))
	}
}
