package strategy

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// Failure messages produced by the dispatcher itself. Oracle rejections carry
// the verifier's own error message instead.
const (
	msgNoToken   = "no ID token provided"
	msgNoTicket  = "No login ticket returned"
	msgNoSubject = "token has no subject"
)

// Strategy authenticates requests by locating a bearer token, verifying it,
// and resolving a principal. Immutable after construction; a single instance
// serves any number of concurrent requests.
type Strategy struct {
	name            string
	audiences       []string
	passRequest     bool
	verifier        Verifier
	resolver        Resolver
	requestResolver RequestResolver
	inst            *instruments
}

// New builds a Strategy from cfg. It applies defaults, then validates:
// a missing verifier, resolver, or audience list is a configuration error and
// no instance is returned.
func New(cfg Config) (*Strategy, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Strategy{
		name:            cfg.Name,
		audiences:       append([]string(nil), cfg.Audiences...),
		passRequest:     cfg.PassRequest,
		verifier:        cfg.Verifier,
		resolver:        cfg.Resolver,
		requestResolver: cfg.RequestResolver,
		inst:            newInstruments(),
	}, nil
}

// Name returns the identifier the host framework selects this strategy by.
func (s *Strategy) Name() string { return s.name }

// Audiences returns a copy of the accepted audience identifiers.
func (s *Strategy) Audiences() []string {
	return append([]string(nil), s.audiences...)
}

// Authenticate runs the full pipeline for one request and returns exactly one
// terminal outcome. It never retries: a transient verifier failure surfaces
// as an authentication failure and the client may resubmit.
func (s *Strategy) Authenticate(ctx context.Context, req *Request) Outcome {
	ctx, span := s.inst.start(ctx, s.name)
	out := s.authenticate(ctx, req)
	s.inst.record(ctx, span, s.name, out)
	return out
}

func (s *Strategy) authenticate(ctx context.Context, req *Request) Outcome {
	token, ok := LocateToken(req)
	if !ok {
		return Failure(Info{Message: msgNoToken}, 0)
	}

	ticket, err := s.verifier.Verify(ctx, token, s.audiences)
	if err != nil {
		return Failure(Info{Message: err.Error()}, 0)
	}
	if ticket == nil {
		return Failure(Info{Message: msgNoTicket}, 0)
	}

	subject := ticket.Subject()
	if subject == "" {
		return Failure(Info{Message: msgNoSubject}, 0)
	}

	var (
		principal any
		info      Info
	)
	if s.passRequest {
		principal, info, err = s.requestResolver(ctx, req, ticket.Claims, subject)
	} else {
		principal, info, err = s.resolver(ctx, ticket.Claims, subject)
	}
	switch {
	case err != nil:
		return Fault(err)
	case principal == nil:
		return Failure(info, 0)
	default:
		out := Success(principal, info)
		out.Subject = subject
		out.Claims = ticket.Claims
		return out
	}
}

// outcomeLabel is the metric/span attribute value for an outcome kind.
func outcomeLabel(o Outcome) string {
	switch o.Kind {
	case KindSuccess:
		return "success"
	case KindFail:
		return "fail"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

func outcomeAttrs(name string, o Outcome) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("strategy", name),
		attribute.String("outcome", outcomeLabel(o)),
	}
}
