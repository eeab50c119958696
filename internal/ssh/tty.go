// Package ssh adapts a gliderlabs/ssh session into a tcell terminal.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of one SSH session, so each connected
// player gets their own tcell.Screen over their own connection.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	onSize func() // resize callback registered by tcell
}

// NewTty wraps a gliderlabs SSH session. pty supplies the initial window
// size; winCh delivers subsequent resize events.
func NewTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{session: s, window: pty.Window, winCh: winCh}
}

// Read pulls raw keyboard bytes from the session's stdin.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write pushes rendered output to the session's stdout.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the underlying SSH channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start is a no-op; the SSH channel is already open when the Tty is built.
func (t *Tty) Start() error { return nil }

// Stop is a no-op; the channel's lifetime belongs to the server handler.
func (t *Tty) Stop() error { return nil }

// Drain is a no-op; SSH writes are not buffered on our side.
func (t *Tty) Drain() error { return nil }

// WindowSize reports the client's current terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts draining the window-change channel
// for the lifetime of the session, invoking cb on every resize.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			f := t.onSize
			t.mu.Unlock()
			if f != nil {
				f()
			}
		}
	}()
}
