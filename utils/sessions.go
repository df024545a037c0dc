package utils

import (
	"net/http"
	"sync"
)

// SessionRegistry maps opaque session tokens to user ids. Tokens carry no
// expiry; they disappear on Destroy or, for the in-memory backend, on restart.
type SessionRegistry interface {
	Create(userID string) (string, error)
	Resolve(token string) (string, error)
	Destroy(token string) error
}

// MemoryRegistry is the default backend: a mutex-guarded map with process
// lifetime and no persistence.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[string]string)}
}

func (m *MemoryRegistry) Create(userID string) (string, error) {
	token := GenerateToken(16)
	m.mu.Lock()
	m.sessions[token] = userID
	m.mu.Unlock()
	return token, nil
}

func (m *MemoryRegistry) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}
	m.mu.RLock()
	userID, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return "", ErrUnauthorized
	}
	return userID, nil
}

func (m *MemoryRegistry) Destroy(token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

func CookieExists(r *http.Request, name string) bool {
	st, err := r.Cookie(name)
	return err == nil && st.Value != ""
}

// GetUserAgent returns the User-Agent string from the request
func GetUserAgent(r *http.Request) string {
	return r.Header.Get("User-Agent")
}

// GetIP returns the IP address of the client from the request
func GetIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}
