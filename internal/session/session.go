package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// Session is the client-held proof of authentication plus the cached
// user profile.
type Session struct {
	ID    string
	Token string
	User  dto.User
}

func (s *Session) IsManager() bool {
	return s != nil && s.User.IsManager()
}

// Manager owns the session lifecycle. Each browser session is stored
// under two keys, <prefix>:<sid>:token and <prefix>:<sid>:user.
type Manager struct {
	store  Store
	prefix string
	newID  func() string
}

func NewManager(store Store, prefix string) *Manager {
	return &Manager{
		store:  store,
		prefix: prefix,
		newID:  func() string { return uuid.NewString() },
	}
}

func (m *Manager) key(sid, field string) string {
	return fmt.Sprintf("%s:%s:%s", m.prefix, sid, field)
}

// Login persists a successful login response under a fresh session id.
func (m *Manager) Login(ctx context.Context, resp dto.LoginResponse) (*Session, error) {
	user, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("encode session user: %w", err)
	}

	sid := m.newID()
	if err := m.store.Set(ctx, m.key(sid, keyToken), resp.Token); err != nil {
		return nil, fmt.Errorf("store session token: %w", err)
	}
	if err := m.store.Set(ctx, m.key(sid, keyUser), string(user)); err != nil {
		return nil, fmt.Errorf("store session user: %w", err)
	}

	return &Session{ID: sid, Token: resp.Token, User: resp.User}, nil
}

// Current loads the session for sid. ok is false when the user record is
// missing or is not valid JSON. A missing token yields a session that calls
// the API without credentials.
func (m *Manager) Current(ctx context.Context, sid string) (*Session, bool, error) {
	if sid == "" {
		return nil, false, nil
	}

	raw, err := m.store.Get(ctx, m.key(sid, keyUser))
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load session user: %w", err)
	}

	var user dto.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false, nil
	}

	token, err := m.store.Get(ctx, m.key(sid, keyToken))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, false, fmt.Errorf("load session token: %w", err)
	}

	return &Session{ID: sid, Token: token, User: user}, true, nil
}

// IsAuthorized treats store failures as unauthorized.
func (m *Manager) IsAuthorized(ctx context.Context, sid string) bool {
	_, ok, err := m.Current(ctx, sid)
	return err == nil && ok
}

// Logout removes both keys. Logging out an unknown sid is not an error.
func (m *Manager) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return m.store.Del(ctx, m.key(sid, keyToken), m.key(sid, keyUser))
}
