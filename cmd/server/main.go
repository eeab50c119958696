// soulbound-mud starts an SSH server hosting the Hollow Barrow, a shared
// tick-based dungeon where items can be soulbound to their owner. Build:
//
//	go build -o soulbound-mud ./cmd/server
//
// Usage:
//
//	./soulbound-mud [--port 2222] [--key server_host_key] [--keep-inventory]
//
// Configuration also comes from SOULMUD_* environment variables; flags win.
// Connect:
//
//	ssh -p 2222 yourname@localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	mathrand "math/rand"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"soulbound-mud/internal/config"
	"soulbound-mud/internal/mud"
	internalssh "soulbound-mud/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	port := flag.Int("port", cfg.Port, "SSH server port")
	keyFile := flag.String("key", cfg.HostKeyPath, "Path to the PEM-encoded host key (auto-generated if absent)")
	keepInv := flag.Bool("keep-inventory", cfg.KeepInventory, "Retain inventories on death (soulbound slots are still cleared)")
	binders := flag.String("binders", strings.Join(cfg.Binders, ","), "Comma-separated usernames allowed to soulbind ('*' for everyone)")
	flag.Parse()

	cfg.Port = *port
	cfg.HostKeyPath = *keyFile
	cfg.KeepInventory = *keepInv
	cfg.Binders = strings.Split(*binders, ",")

	signer, err := loadOrCreateHostKey(logger, cfg.HostKeyPath)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	server := mud.NewServer(cfg, logger, mathrand.New(mathrand.NewSource(time.Now().UnixNano())))
	go server.Run()

	sshServer := &gossh.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: func(s gossh.Session) {
			handleSession(server, logger, s)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — the SSH username is the character name.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "port", cfg.Port, "keep_inventory", cfg.KeepInventory, "binders", cfg.Binders)
	logger.Info("connect with", "cmd", fmt.Sprintf("ssh -p %d -o StrictHostKeyChecking=no yourname@localhost", cfg.Port))
	if err := sshServer.ListenAndServe(); err != nil {
		logger.Error("ssh server", "error", err)
		os.Exit(1)
	}
}

// termMu protects os.Setenv("TERM") around screen creation. tcell reads TERM
// from the process environment, so concurrent joins must serialize here.
var termMu sync.Mutex

// allowedTerms whitelists TERM values we pass to tcell's terminfo lookup.
// Anything else falls back to xterm-256color.
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

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the connection so the SSH session stays open.
func handleSession(server *mud.Server, logger *slog.Logger, s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if after, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[after] {
			term = after
			break
		}
	}

	name := sanitizeName(s.User())
	if name == "" {
		name = "wanderer"
	}

	// Create a tcell screen backed by this SSH session. TERM must be set in
	// the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	id, color := server.NextSessionID()
	sess := mud.NewSession(id, name, color, screen)

	server.AddSession(sess)
	defer server.RemoveSession(sess)

	logger.Info("connected", "player", name, "remote", s.RemoteAddr(), "term", term)
	server.RunLoop(sess)
	logger.Info("disconnected", "player", name)
}

// sanitizeName strips control characters from an SSH username and caps it at
// 16 bytes, cutting on a rune boundary.
func sanitizeName(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > 16 {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(logger *slog.Logger, path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "soulbound-mud server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	return signer, nil
}
