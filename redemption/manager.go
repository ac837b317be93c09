package redemption

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"turipass.io/terminal/scan"
)

var (
	ErrSessionNotFound = errors.New("redemption session not found")
	ErrNoOpenWindow    = errors.New("no scan window is open for this session")
)

// Manager tracks live redemption sessions and their scan windows. One
// window at most is open per session; opening the scanner again resets
// the session, discarding any previously scanned identity.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	windows  map[string]*scan.Window

	window time.Duration
	logger *zap.Logger
}

func NewManager(window time.Duration, logger *zap.Logger) *Manager {
	if window <= 0 {
		window = scan.DefaultWindow
	}
	return &Manager{
		sessions: make(map[string]*Session),
		windows:  make(map[string]*scan.Window),
		window:   window,
		logger:   logger,
	}
}

func (m *Manager) Create() *Session {
	session := NewSession()

	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()

	return session
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// OpenScanWindow resets the session and opens its scanner for the
// configured window. The window closes itself on timeout; any previous
// window for the session is closed first.
func (m *Manager) OpenScanWindow(sessionID string) error {
	session, err := m.Get(sessionID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	previous := m.windows[sessionID]
	delete(m.windows, sessionID)
	m.mu.Unlock()
	if previous != nil {
		previous.Close()
	}

	session.Cancel()

	window := scan.OpenWindow(m.window, func(reason scan.CloseReason) {
		m.mu.Lock()
		delete(m.windows, sessionID)
		m.mu.Unlock()

		if reason == scan.CloseReasonTimeout {
			m.logger.Info("scan window timed out",
				zap.String("session_id", sessionID))
		}
	})

	m.mu.Lock()
	m.windows[sessionID] = window
	m.mu.Unlock()

	return nil
}

// Scan feeds a decoded QR payload into the session's open window and
// advances the session to Scanned.
func (m *Manager) Scan(sessionID, raw string) (scan.Identity, error) {
	session, err := m.Get(sessionID)
	if err != nil {
		return scan.Identity{}, err
	}

	m.mu.Lock()
	window, ok := m.windows[sessionID]
	m.mu.Unlock()
	if !ok {
		return scan.Identity{}, ErrNoOpenWindow
	}

	identity, err := window.Scan(raw)
	if err != nil {
		return scan.Identity{}, err
	}
	if err = session.ApplyScan(identity); err != nil {
		return scan.Identity{}, err
	}
	return identity, nil
}

// CloseScanWindow shuts the session's scanner on operator request.
func (m *Manager) CloseScanWindow(sessionID string) {
	m.mu.Lock()
	window, ok := m.windows[sessionID]
	m.mu.Unlock()

	if ok {
		window.Close()
	}
}

// Drop removes a session entirely, closing any open window.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	window, hadWindow := m.windows[sessionID]
	delete(m.windows, sessionID)
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if hadWindow {
		window.Close()
	}
}
