// Package server exposes the maze game over SSH.
package server

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mshel/sshmaze/internal/config"
	"github.com/Mshel/sshmaze/internal/game"
	"github.com/Mshel/sshmaze/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	cfg       config.Config
	scores    *game.HighScoreService
	limiter   *IPLimiter
	sshServer *ssh.Server
}

// New builds the SSH server. scores may be nil, in which case completions are
// not persisted and the leaderboard is disabled.
func New(cfg config.Config, scores *game.HighScoreService) (*Server, error) {
	srv := &Server{
		cfg:     cfg,
		scores:  scores,
		limiter: NewIPLimiter(cfg.MaxConnectionsPerIP),
	}

	sshServer, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(cfg.PrivateKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.viewHandler),
			logging.Middleware(),
			activeterm.Middleware(),
			srv.limiter.Middleware,
		),
	)
	if err != nil {
		return nil, err
	}
	srv.sshServer = sshServer
	return srv, nil
}

// ListenAndServe blocks until SIGINT/SIGTERM and then shuts down gracefully.
func (srv *Server) ListenAndServe() error {
	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "host", srv.cfg.Host, "port", srv.cfg.Port)
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-serverDoneChannel:
	case err := <-serveErr:
		log.Error("Could not start server", "error", err)
		return err
	}

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
		return err
	}
	return nil
}

func (srv *Server) viewHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()
	controllerModel := ui.NewControllerModel(
		ui.NewSessionFactory(srv.cfg.MazeCols, srv.cfg.MazeRows, srv.scores),
		ui.ScoreBoardFor(srv.scores),
		sshSession.User(),
		pty.Window.Width,
		pty.Window.Height,
	)

	return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
}
