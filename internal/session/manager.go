package session

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "session"

	// DefaultLifetime is how long a session token stays valid when no
	// session duration is configured.
	DefaultLifetime = 31 * 24 * time.Hour
)

// Manager issues, reads and clears the session cookie.
type Manager struct {
	signKey  []byte
	issuer   string
	duration time.Duration
	secure   bool
	now      func() time.Time
	logger   *logger.Logger
}

// NewManager builds a Manager from the application settings.
func NewManager(cfg config.App, log *logger.Logger) *Manager {
	log.Debug().
		Str("issuer", cfg.SessionIssuer).
		Dur("duration", cfg.SessionDuration).
		Bool("secure", cfg.SecureCookie).
		Msg("creating session manager")

	return &Manager{
		signKey:  []byte(cfg.SessionSecret),
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		secure:   cfg.SecureCookie,
		now:      time.Now,
		logger:   log,
	}
}

// Establish marks the response's client as signed in as username.
func (m *Manager) Establish(w http.ResponseWriter, username string) error {
	now := m.now()

	token, err := generateToken(m.issuer, username, m.lifetime(), m.signKey, now)
	if err != nil {
		return err
	}

	cookie := m.cookie(token)
	if m.duration > 0 {
		cookie.Expires = now.Add(m.duration)
		cookie.MaxAge = int(m.duration.Seconds())
	}
	http.SetCookie(w, cookie)

	return nil
}

// Username returns the username held by r's session cookie. ok is false when
// the cookie is absent or does not verify.
func (m *Manager) Username(r *http.Request) (username string, ok bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	username, err = parseToken(cookie.Value, m.signKey, m.issuer, m.now())
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("rejected session cookie")
		return "", false
	}

	return username, true
}

// Terminate expires the session cookie. Calling it without an active
// session is harmless.
func (m *Manager) Terminate(w http.ResponseWriter) {
	cookie := m.cookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)
}

// lifetime is the validity of issued tokens. The cookie only gets a max age
// for a configured duration.
func (m *Manager) lifetime() time.Duration {
	if m.duration > 0 {
		return m.duration
	}
	return DefaultLifetime
}

func (m *Manager) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
