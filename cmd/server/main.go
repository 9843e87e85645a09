// delve-server runs the dungeon over SSH. Every client gets an independent
// game on its own screen. Build:
//
//	go build -o delve-server ./cmd/server
//
// Usage:
//
//	./delve-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"delve-roguelike/internal/config"
	"delve-roguelike/internal/game"
	"delve-roguelike/internal/logger"
	internalssh "delve-roguelike/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	port := flag.Int("port", cfg.SSHPort, "SSH server port")
	keyFile := flag.String("key", cfg.SSHHostKey, "Path to the PEM-encoded host key (generated if absent)")
	flag.Parse()
	cfg.SSHPort, cfg.SSHHostKey = *port, *keyFile

	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	signer, err := loadOrCreateHostKey(cfg.SSHHostKey)
	if err != nil {
		logger.Log.WithError(err).Fatal("host key unavailable")
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", cfg.SSHPort),
		Handler: func(s gossh.Session) {
			serveSession(s, cfg)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logger.Log.WithField("addr", srv.Addr).Info("ssh server listening")
	logger.Log.Fatal(srv.ListenAndServe())
}

// serveSession plays one game on the client's terminal. It blocks for the
// lifetime of the connection.
func serveSession(s gossh.Session, cfg config.Config) {
	log := logger.Log.WithFields(logrus.Fields{
		"user":   sanitizeName(s.User()),
		"remote": s.RemoteAddr().String(),
	})

	pty, winCh, ok := s.Pty()
	if !ok {
		fmt.Fprintf(s, "This game needs a terminal. Connect with: ssh -t -p %d <host>\n", cfg.SSHPort)
		return
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	screen, err := newScreen(tty, sessionTerm(pty.Term, s.Environ()))
	if err != nil {
		log.WithError(err).Warn("terminal setup failed")
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Warn("screen init failed")
		return
	}
	defer screen.Fini()
	screen.EnableMouse()

	// A dropped connection ends PollEvent.
	go func() {
		<-s.Context().Done()
		screen.Fini()
	}()

	g, err := game.New(screen, cfg)
	if err != nil {
		log.WithError(err).Error("game setup failed")
		return
	}
	log.Info("session started")
	if err := g.Run(); err != nil {
		log.WithError(err).Error("game aborted")
	}
	log.Info("session ended")
}

// termMu guards the process-wide TERM variable that terminfo lookup reads.
var termMu sync.Mutex

func newScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	defer termMu.Unlock()
	if err := os.Setenv("TERM", term); err != nil {
		return nil, err
	}
	return tcell.NewTerminfoScreenFromTty(tty)
}

// allowedTerms are the terminal types a client may request. Anything else
// falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// sessionTerm picks the terminal type from the pty request, then the
// session environment.
func sessionTerm(ptyTerm string, environ []string) string {
	term := ptyTerm
	if term == "" {
		for _, kv := range environ {
			if v, ok := strings.CutPrefix(kv, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if !allowedTerms[term] {
		return defaultTerm
	}
	return term
}

const maxNameRunes = 16

// sanitizeName strips control characters from a client-supplied user name
// and caps its length before it is logged.
func sanitizeName(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range name {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if n == maxNameRunes {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates an
// ed25519 key and persists it there.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		signer, err := xssh.ParsePrivateKey(data)
		if err != nil {
			return nil, fmt.Errorf("parse host key %s: %w", path, err)
		}
		logger.Log.WithField("path", path).Info("host key loaded")
		return signer, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read host key: %w", err)
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "delve-roguelike server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		logger.Log.WithError(err).Warn("host key not persisted")
	} else {
		logger.Log.WithField("path", path).Info("host key generated")
	}
	return signer, nil
}
