package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file. Wish generates the key
	// if it does not exist. Empty means ~/.t2048/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate and Seed are passed to every session.
	TickRate int
	Seed     int64
}

// sessionIDKey stores the session ID in the SSH context so the logging
// middleware and the Bubble Tea handler agree on it.
type sessionIDKey struct{}

// SSHServer serves one independent game session per SSH connection.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
	newGame  GameFactory
	sessions *ActiveSessions
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// scores are not persisted.
func NewSSHServer(cfg SSHServerConfig, newGame GameFactory, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = NewServerLogger(os.Stderr, log.InfoLevel)
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		logger:   logger,
		newGame:  newGame,
		sessions: NewActiveSessions(),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = filepath.Join(config.DataDir(), "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "t2048 needs an interactive terminal; connect with ssh -t")
		return nil, nil
	}

	opts := Options{
		Store:  s.store,
		Logger: s.logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
			Seed:     s.config.Seed,
		},
		Session: Session{
			ID:     sessionID(sshSession),
			Player: sshSession.User(),
		},
	}

	return NewSessionModel(s.newGame, opts), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware assigns the session ID, tracks the session while it is
// connected and logs connection events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		sess := Session{ID: uuid.NewString(), Player: sshSession.User()}
		sshSession.Context().SetValue(sessionIDKey{}, sess.ID)

		active := s.sessions.Add(sess)
		s.logger.Info("connection opened",
			"session", sess.ID,
			"user", sess.Player,
			"remote", sshSession.RemoteAddr().String(),
			"active", active,
		)

		next(sshSession)

		active = s.sessions.Remove(sess.ID)
		s.logger.Info("connection closed",
			"session", sess.ID,
			"user", sess.Player,
			"duration", time.Since(start).Round(time.Second),
			"active", active,
		)
	}
}

// sessionID returns the ID assigned by loggingMiddleware.
func sessionID(sshSession ssh.Session) string {
	if id, ok := sshSession.Context().Value(sessionIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// Sessions returns the sessions currently connected.
func (s *SSHServer) Sessions() []Session {
	return s.sessions.List()
}

// ListenAndServe starts the SSH server and blocks until ctx is cancelled,
// then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("tui: ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...", "active", len(s.Sessions()))
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
