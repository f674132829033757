package pastebins

import "context"

// Meta identifies a paste service.
//
// It is attached to a backend type, not to an instance: every backend package
// exposes its Meta as a package-level value so callers can name a service
// (e.g. in a warning) before constructing one.
type Meta struct {
	ID          string // registry key, ex: "pastebin"
	DisplayName string // ex: "Pastebin"
	Domain      string // ex: "pastebin.com"
}

// String renders the identity the way it appears in user-facing messages.
func (m Meta) String() string {
	return m.DisplayName + " / " + m.Domain
}

// PasteBin is the capability every paste-hosting backend implements.
type PasteBin interface {
	// Meta returns the backend type's identity. Constant per type.
	Meta() Meta

	// Upload submits content and returns the resulting paste URL.
	// Every call performs a fresh round trip; there is no retry or caching.
	// Failures are *TransportError or *APIError.
	Upload(ctx context.Context, content string) (string, error)
}
