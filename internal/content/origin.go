package content

import (
	"net/url"
	"strings"
)

// localOrigin is the fixed development backend. The decision between it and
// a same-origin relative base is a two-branch switch on the page's own host,
// never inferred from response data.
const localOrigin = "http://localhost:8000"

var localHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"0.0.0.0":   true,
}

// BaseFor maps the page host to the API base and origin. Local hostnames get
// the fixed local origin; everything else resolves same-origin (empty origin,
// root-relative base).
func BaseFor(pageHost string) (base, origin string) {
	h := pageHost
	if i := strings.IndexByte(h, ':'); i >= 0 {
		h = h[:i]
	}
	if localHosts[h] {
		return localOrigin + "/api", localOrigin
	}
	return "/api", ""
}

// Endpoint turns the configured page identity plus an optional explicit
// API_BASE override into the absolute base and origin the client fetches
// against. A root-relative result is resolved against pageOrigin so the
// server-side client has something it can actually dial.
func Endpoint(pageHost, pageOrigin, override string) (base, origin string) {
	pageOrigin = strings.TrimSuffix(pageOrigin, "/")
	if override != "" {
		base = strings.TrimSuffix(override, "/")
		if u, err := url.Parse(base); err == nil && u.Scheme != "" && u.Host != "" {
			return base, u.Scheme + "://" + u.Host
		}
		return pageOrigin + base, pageOrigin
	}
	base, origin = BaseFor(pageHost)
	if origin == "" {
		origin = pageOrigin
		base = pageOrigin + base
	}
	return base, origin
}

// ResolveMedia turns a possibly-relative media reference into a fetchable
// URL: empty stays empty, a root-relative path is prefixed with the API
// origin, anything else is already absolute and passes through.
func (c *Client) ResolveMedia(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "/") && c.origin != "" {
		return c.origin + ref
	}
	return ref
}

// resolveRef absolutizes a pagination cursor the same way media refs are
// resolved.
func (c *Client) resolveRef(ref string) string {
	if strings.HasPrefix(ref, "/") && c.origin != "" {
		return c.origin + ref
	}
	return ref
}
