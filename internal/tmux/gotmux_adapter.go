// Package tmux opens focus sessions for sorties.
package tmux

import (
	"fmt"
	"strings"

	"github.com/GianlucaP106/gotmux/gotmux"

	"github.com/example/senryaku/internal/ports/secondary"
)

// GotmuxAdapter implements secondary.FocusRunner on top of the gotmux
// library. A focus session is a single-pane tmux session named after
// the sortie, so the terminal itself marks what the block is for.
type GotmuxAdapter struct {
	tmux *gotmux.Tmux
}

// NewGotmuxAdapter creates a new gotmux adapter.
func NewGotmuxAdapter() (*GotmuxAdapter, error) {
	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("failed to create tmux client: %w", err)
	}
	return &GotmuxAdapter{tmux: tmux}, nil
}

// OpenFocusSession creates (or reuses) the sortie's focus session and
// returns the attach instruction.
func (g *GotmuxAdapter) OpenFocusSession(sortieID, title string) (string, error) {
	name := SessionName(sortieID)

	existing, err := g.getSession(name)
	if err != nil {
		return "", err
	}
	if existing == nil {
		session, err := g.tmux.NewSession(&gotmux.SessionOptions{Name: name})
		if err != nil {
			return "", fmt.Errorf("failed to create focus session: %w", err)
		}

		windows, err := session.ListWindows()
		if err != nil {
			return "", fmt.Errorf("failed to list windows: %w", err)
		}
		if len(windows) > 0 {
			if err := windows[0].Rename(windowName(title)); err != nil {
				return "", fmt.Errorf("failed to rename window: %w", err)
			}
		}
	}

	return fmt.Sprintf("Attach with: tmux attach -t %s", name), nil
}

// CloseFocusSession kills the sortie's focus session if it exists.
func (g *GotmuxAdapter) CloseFocusSession(sortieID string) error {
	session, err := g.getSession(SessionName(sortieID))
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}
	return session.Kill()
}

func (g *GotmuxAdapter) getSession(name string) (*gotmux.Session, error) {
	sessions, err := g.tmux.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	for _, s := range sessions {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

// SessionName derives the tmux session name for a sortie. Session names
// cannot contain dots or colons; IDs like SRT-001 pass through as-is.
func SessionName(sortieID string) string {
	name := strings.ToLower(sortieID)
	name = strings.ReplaceAll(name, ".", "-")
	name = strings.ReplaceAll(name, ":", "-")
	return "focus-" + name
}

// windowName trims a sortie title down to a readable window label.
func windowName(title string) string {
	const max = 30
	name := strings.TrimSpace(title)
	if len(name) > max {
		name = name[:max]
	}
	if name == "" {
		name = "focus"
	}
	return name
}

// Ensure GotmuxAdapter implements the interface
var _ secondary.FocusRunner = (*GotmuxAdapter)(nil)
