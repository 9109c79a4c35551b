// Package viewerstate holds the client-side cache of the current viewer.
// It is a pure state container: no knowledge of cookies, tokens, or network
// calls. Callers dispatch an action after a login/logout round trip settles
// and read the cached viewer to branch rendering; a failed round trip must
// not dispatch, leaving the previous viewer authoritative.
package viewerstate

import (
	"fmt"
	"sync/atomic"

	"github.com/stayloft/stayloft/internal/auth"
)

// ActionType tags a store mutation.
type ActionType string

// ActionSetViewer replaces the cached viewer with the action's payload, or
// with the default anonymous value when the payload is nil. It is the only
// recognized mutation.
const ActionSetViewer ActionType = "SET_VIEWER"

// Action is a tagged store mutation.
type Action struct {
	Type   ActionType
	Viewer *auth.Viewer
}

// Store is a single-owner cell holding one Viewer. One logical writer calls
// Dispatch; any number of readers call Viewer and always observe a whole
// snapshot, because writers install a fresh value instead of mutating the
// current one in place.
type Store struct {
	current atomic.Pointer[auth.Viewer]
}

// NewStore creates a Store holding the default viewer: identity fields
// absent and DidRequest false, meaning no login attempt has settled yet.
func NewStore() *Store {
	s := &Store{}
	v := defaultViewer()
	s.current.Store(&v)
	return s
}

// Viewer returns the current cached viewer.
func (s *Store) Viewer() auth.Viewer {
	return *s.current.Load()
}

// Dispatch applies a mutation. An unrecognized action type is a programming
// defect and panics, leaving the state unchanged.
func (s *Store) Dispatch(a Action) {
	switch a.Type {
	case ActionSetViewer:
		v := defaultViewer()
		if a.Viewer != nil {
			v = *a.Viewer
		}
		s.current.Store(&v)
	default:
		panic(fmt.Sprintf("viewerstate: unhandled action type %q", a.Type))
	}
}

func defaultViewer() auth.Viewer {
	return auth.Viewer{}
}
