package auth

// Viewer is the client-visible projection of the authenticated identity for
// the current session. It is rebuilt on every login/logout and never
// persisted. HasWallet is derived from the user's wallet link at projection
// time; DidRequest is true on every settled login/logout and false only in
// the client's unfetched initial state.
type Viewer struct {
	ID         *string `json:"id,omitempty"`
	Token      *string `json:"token,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
	HasWallet  bool    `json:"hasWallet"`
	DidRequest bool    `json:"didRequest"`
}

// Anonymous returns the viewer shape for a settled request with no identity.
func Anonymous() Viewer {
	return Viewer{DidRequest: true}
}

// LoginInput selects which of the two login paths to run. The variants are
// ExternalCode and ResumeSession; the sealed interface keeps both paths
// exhaustively handled.
type LoginInput interface {
	isLoginInput()
}

// ExternalCode runs the code path: a fresh authorization code from the
// identity provider is exchanged for profile data.
type ExternalCode struct {
	Code string
}

// ResumeSession runs the cookie path: the existing session cookie is the only
// evidence of identity, and the provider is never contacted.
type ResumeSession struct{}

func (ExternalCode) isLoginInput()  {}
func (ResumeSession) isLoginInput() {}
