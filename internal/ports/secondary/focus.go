package secondary

// FocusRunner defines the secondary port for opening a focus session
// (a terminal multiplexer session scoped to one sortie).
type FocusRunner interface {
	// OpenFocusSession creates (or reuses) a session for the sortie and
	// returns instructions for attaching to it.
	OpenFocusSession(sortieID, title string) (string, error)
}
