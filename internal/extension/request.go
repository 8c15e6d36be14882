// Package extension implements the surface this service exposes to the
// host runtime: the named actions, the named data sources and the request
// and response envelopes they exchange. Session data travels on the
// request and response; nothing is stored here.
package extension

import (
	"strings"

	"storefront-extensions/internal/locale"
)

// Request is the host-runtime request envelope.
type Request struct {
	Method      string                 `json:"method"`
	Path        string                 `json:"path"`
	Query       map[string]string      `json:"query"`
	Headers     map[string]string      `json:"headers"`
	Body        string                 `json:"body,omitempty"`
	SessionData map[string]interface{} `json:"sessionData,omitempty"`
}

const pathHeader = "commerce-path"

// PagePath returns the path being resolved: the explicit query parameter,
// else the host's path header, else the request path.
func (r Request) PagePath() string {
	if p := r.Query["path"]; p != "" {
		return p
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, pathHeader) {
			return v
		}
	}
	return r.Path
}

// Locale resolves the request's locale with the given resolver.
func (r Request) Locale(resolver locale.Resolver) locale.Locale {
	return resolver.Resolve(r.Query, r.Headers)
}

// SessionString reads a string value from the session bag.
func (r Request) SessionString(key string) string {
	if r.SessionData == nil {
		return ""
	}
	if v, ok := r.SessionData[key].(string); ok {
		return v
	}
	return ""
}

// WithSession copies the request session and overlays the given values.
// A nil value removes the key, mirroring how handlers clear session state.
func (r Request) WithSession(values map[string]interface{}) map[string]interface{} {
	session := make(map[string]interface{}, len(r.SessionData)+len(values))
	for k, v := range r.SessionData {
		session[k] = v
	}
	for k, v := range values {
		if v == nil {
			delete(session, k)
			continue
		}
		session[k] = v
	}
	return session
}

// Response is the host-runtime action response envelope. Body is already
// JSON-encoded.
type Response struct {
	StatusCode  int                    `json:"statusCode"`
	Body        string                 `json:"body"`
	SessionData map[string]interface{} `json:"sessionData,omitempty"`
}

// DataSourceConfig is the host-side configuration of a named data source.
type DataSourceConfig struct {
	Configuration map[string]interface{} `json:"configuration"`
}

// DataSourceResult wraps a data-source payload for the host.
type DataSourceResult struct {
	DataSourcePayload interface{} `json:"dataSourcePayload"`
}
