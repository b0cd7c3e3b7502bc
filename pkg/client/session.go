package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Session is the client-local auth state: the bearer token plus the profile
// it was issued for.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SessionStore persists the session to a JSON file so a restarted client
// stays logged in until the token expires.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load reads the saved session. A missing file is not an error; it just
// means nobody is logged in.
func (s *SessionStore) Load() (*Session, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	session := &Session{}
	if err := json.NewDecoder(f).Decode(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Save writes the session, readable only by the owner.
func (s *SessionStore) Save(session *Session) error {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(session)
}

// Clear deletes the saved session.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
