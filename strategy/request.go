package strategy

import "net/http"

// Request is the transport-agnostic view of an inbound request that the
// locator probes for tokens. All maps are optional; a nil map behaves like an
// empty one. Host framework adapters populate whichever maps their transport
// provides (route parameters, for example, only exist behind a router).
type Request struct {
	// Body holds parsed form or JSON body fields.
	Body map[string]string

	// Query holds URL query parameters (first value wins).
	Query map[string]string

	// Header holds request headers.
	Header map[string]string

	// Params holds router path parameters.
	Params map[string]string
}

// FromHTTP builds a Request from a standard *http.Request. The body map is
// populated from the parsed form (callers that want JSON bodies decode them
// and fill Body directly), the query map from the URL, and headers verbatim.
// Path parameters are left nil; router adapters fill them in.
func FromHTTP(r *http.Request) *Request {
	req := &Request{
		Query:  make(map[string]string, len(r.URL.Query())),
		Header: make(map[string]string, len(r.Header)),
	}

	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			req.Query[k] = vs[0]
		}
	}
	for k, vs := range r.Header {
		if len(vs) > 0 {
			req.Header[k] = vs[0]
		}
	}

	// ParseForm is cheap when the body was already consumed or is not a form.
	if err := r.ParseForm(); err == nil && len(r.PostForm) > 0 {
		req.Body = make(map[string]string, len(r.PostForm))
		for k, vs := range r.PostForm {
			if len(vs) > 0 {
				req.Body[k] = vs[0]
			}
		}
	}

	return req
}

// headerValue looks up a header field tolerating both the literal key and its
// canonical MIME form ("id_token" vs "Id_token").
func (r *Request) headerValue(key string) string {
	if r.Header == nil {
		return ""
	}
	if v, ok := r.Header[key]; ok {
		return v
	}
	return r.Header[http.CanonicalHeaderKey(key)]
}
