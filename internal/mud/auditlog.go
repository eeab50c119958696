package mud

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"soulbound-mud/internal/item"
	"soulbound-mud/internal/soulbound"
)

// Audit event kinds.
const (
	EventBound          = "bound"
	EventDropDestroyed  = "drop-destroyed"
	EventDeathDestroyed = "death-destroyed"
)

// AuditEntry is one line of soulbound.jsonl.
type AuditEntry struct {
	Time   time.Time `json:"time"`
	Event  string    `json:"event"`
	Player string    `json:"player"`
	Item   string    `json:"item"`
}

// AuditLog appends soulbound events to $XDG_DATA_HOME/soulbound-mud/soulbound.jsonl,
// defaulting to ~/.local/share/soulbound-mud. Write failures are logged and
// not retried so a disk problem never takes the server down.
type AuditLog struct {
	mu     sync.Mutex
	logger *slog.Logger
	path   string
}

func NewAuditLog(logger *slog.Logger) *AuditLog {
	a := &AuditLog{logger: logger}
	dir, err := auditDir()
	if err != nil {
		logger.Warn("audit log disabled", "error", err)
		return a
	}
	a.path = filepath.Join(dir, "soulbound.jsonl")
	return a
}

// Record appends one event. Safe to call concurrently.
func (a *AuditLog) Record(event, player, itemName string) {
	if a.path == "" {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		a.logger.Warn("audit write failed", "error", err)
		return
	}
	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		a.logger.Warn("audit write failed", "error", err)
		return
	}
	defer f.Close()

	data, err := json.Marshal(AuditEntry{
		Time:   time.Now().UTC(),
		Event:  event,
		Player: player,
		Item:   itemName,
	})
	if err != nil {
		a.logger.Warn("audit marshal failed", "error", err)
		return
	}
	f.Write(data)         //nolint:errcheck — best-effort write
	f.Write([]byte("\n")) //nolint:errcheck
}

// auditSoulboundItems records one audit line per soulbound item in items.
// Call before enforcement zeroes the entries.
func (s *Server) auditSoulboundItems(player, event string, items []item.Item) {
	for _, it := range items {
		if soulbound.IsSoulbound(it) {
			s.audit.Record(event, player, it.Name)
		}
	}
}

func auditDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "soulbound-mud"), nil
}
