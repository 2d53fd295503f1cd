package strategy

import "strings"

// Token field names probed by the locator.
const (
	FieldIDToken     = "id_token"
	FieldAccessToken = "access_token"
)

const bearerScheme = "Bearer"

// LocateToken returns the first token found on the request, probing locations
// in fixed priority order:
//
//  1. body "id_token", then body "access_token"
//  2. query "id_token", then query "access_token"
//  3. header "id_token", then header "access_token"
//  4. route param "id_token", then "access_token"
//  5. Authorization header of the exact form "Bearer <token>"
//
// First non-empty match wins; later locations are never consulted. The bearer
// form requires exactly one space and the case-sensitive scheme "Bearer";
// anything else yields absence. LocateToken is a pure function: nil maps are
// treated as empty and no I/O is performed.
func LocateToken(req *Request) (string, bool) {
	if req == nil {
		return "", false
	}

	for _, field := range []string{FieldIDToken, FieldAccessToken} {
		if v := req.Body[field]; v != "" {
			return v, true
		}
	}
	for _, field := range []string{FieldIDToken, FieldAccessToken} {
		if v := req.Query[field]; v != "" {
			return v, true
		}
	}
	for _, field := range []string{FieldIDToken, FieldAccessToken} {
		if v := req.headerValue(field); v != "" {
			return v, true
		}
	}
	for _, field := range []string{FieldIDToken, FieldAccessToken} {
		if v := req.Params[field]; v != "" {
			return v, true
		}
	}

	return bearerToken(req.headerValue("Authorization"))
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme match is case-sensitive and the value must split into
// exactly two segments on a single space.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != bearerScheme || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
