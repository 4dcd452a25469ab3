package tools

import "github.com/HendryAvila/swatchy/internal/design"

// TokenObserver is notified after a design token has been stored. It's an
// optional dependency — the create tool works fine with a nil observer.
//
// The server wires the resource publisher in here so that tokens created
// at runtime show up in the resource listing immediately.
type TokenObserver interface {
	// OnTokenCreated is called after the token store write completes.
	// slug is the derived store key; tok is the record as stored.
	OnTokenCreated(slug string, tok design.Token)
}

// notifyObserver is a nil-safe helper called from Handle methods.
// If observer is nil, this is a no-op.
func notifyObserver(obs TokenObserver, slug string, tok design.Token) {
	if obs == nil {
		return
	}
	obs.OnTokenCreated(slug, tok)
}
