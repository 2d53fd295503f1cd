package strategy

import "net/http"

// Kind discriminates the three terminal outcomes of an authentication attempt.
type Kind int

const (
	// KindSuccess means a principal was resolved.
	KindSuccess Kind = iota + 1
	// KindFail means the credential was absent, rejected, or the host
	// declined to resolve a principal. 401-class.
	KindFail
	// KindError means the host resolver itself failed. 5xx-class: an
	// application fault, not an invalid credential.
	KindError
)

// Info carries caller-visible data attached to an outcome: a message for
// failures, and arbitrary host-supplied fields (scopes, account hints) for
// successes and declines.
type Info struct {
	Message string         `json:"message,omitempty"`
	Extra   map[string]any `json:"extra,omitempty"`
}

// Outcome is the single terminal result of Strategy.Authenticate. Exactly one
// kind is ever produced per call; outcomes are never retried or merged.
type Outcome struct {
	Kind      Kind
	Principal any
	Info      Info
	Status    int
	Err       error

	// Subject and Claims are populated on success so callers can propagate
	// the verified identity without re-parsing the token.
	Subject string
	Claims  map[string]any
}

// Succeeded reports whether a principal was resolved.
func (o Outcome) Succeeded() bool { return o.Kind == KindSuccess }

// Failed reports whether authentication was declined (401-class).
func (o Outcome) Failed() bool { return o.Kind == KindFail }

// Errored reports whether the host resolver signalled a fault (5xx-class).
func (o Outcome) Errored() bool { return o.Kind == KindError }

// Success builds a success outcome carrying the resolved principal.
func Success(principal any, info Info) Outcome {
	return Outcome{Kind: KindSuccess, Principal: principal, Info: info}
}

// Failure builds an authentication-failure outcome. A zero status defaults to
// 401 Unauthorized.
func Failure(info Info, status int) Outcome {
	if status == 0 {
		status = http.StatusUnauthorized
	}
	return Outcome{Kind: KindFail, Info: info, Status: status}
}

// Fault builds a host-error outcome.
func Fault(err error) Outcome {
	return Outcome{Kind: KindError, Err: err, Status: http.StatusInternalServerError}
}
