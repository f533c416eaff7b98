package routes

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/runsha/sketchfolio/db"
	"github.com/runsha/sketchfolio/model"
)

// ViewTracker records which sections are viewed without storing client addresses.
type ViewTracker struct {
	Storage db.Storage
	salt    string
}

// NewViewTracker creates a tracker. An empty salt is replaced by a random
// per-process one, so visitor hashes do not survive restarts.
func NewViewTracker(storage db.Storage, salt string) (*ViewTracker, error) {
	if salt == "" {
		random := make([]byte, 32)
		if _, err := rand.Read(random); err != nil {
			return nil, fmt.Errorf("could not generate salt: %w", err)
		}

		salt = hex.EncodeToString(random)
	}

	return &ViewTracker{Storage: storage, salt: salt}, nil
}

// HashVisitor returns a short salted hash of the client address.
func (t *ViewTracker) HashVisitor(addr string) string {
	hash := sha256.Sum256([]byte(addr + t.salt))

	return hex.EncodeToString(hash[:])[:16]
}

// Track stores a view of section unless the client asked not to be tracked.
// Failures are logged only.
func (t *ViewTracker) Track(r *http.Request, section model.Section) {
	if r.Header.Get("DNT") == "1" {
		return
	}

	visitor := t.HashVisitor(clientIP(r))

	if err := t.Storage.RecordView(section, visitor); err != nil {
		slog.ErrorContext(r.Context(), "Failed to record view", "section", section, "error", err)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
