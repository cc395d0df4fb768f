package session

import (
	"errors"

	"github.com/goccy/go-json"
)

const (
	keyToken   = "token"
	keyProfile = "user"
)

var ErrNoCredential = errors.New("session: not logged in")

type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the credential provider. The token is read from the store on every call
// and never kept in memory, so a logout is observed by the next privileged call.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

// Login stores the bearer credential and the profile snapshot together.
func (s *Session) Login(token string, p Profile) error {
	if token == "" {
		return ErrNoCredential
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return s.store.Set(map[string]string{
		keyToken:   token,
		keyProfile: string(raw),
	})
}

func (s *Session) Logout() error {
	return s.store.Delete(keyToken, keyProfile)
}

func (s *Session) Token() (string, error) {
	token, ok, err := s.store.Get(keyToken)
	if err != nil {
		return "", err
	}

	if !ok || token == "" {
		return "", ErrNoCredential
	}

	return token, nil
}

func (s *Session) Profile() (Profile, error) {
	raw, ok, err := s.store.Get(keyProfile)
	if err != nil {
		return Profile{}, err
	}

	if !ok || raw == "" {
		return Profile{}, ErrNoCredential
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, err
	}

	return p, nil
}
