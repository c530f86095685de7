package selection

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ImageRef is an opaque, serializable locator for a user chosen image.
// It is either a URI (file:///home/me/pic.png) or a bare filesystem path.
type ImageRef string

// Empty is the "no selection" reference.
const Empty ImageRef = ""

// IsEmpty reports whether r is the Empty sentinel.
func (r ImageRef) IsEmpty() bool {
	return r == Empty
}

func (r ImageRef) String() string {
	return string(r)
}

// FromPath builds a file:// reference for a local path.
func FromPath(path string) ImageRef {
	if path == "" {
		return Empty
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // C:/pics/a.png -> /C:/pics/a.png
	}
	u := url.URL{Scheme: "file", Path: p}
	return ImageRef(u.String())
}

// Scheme returns the lower-cased URI scheme of the reference, or "" for a bare path.
func (r ImageRef) Scheme() string {
	if r.isBarePath() {
		return ""
	}
	u, err := url.Parse(string(r))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// Path returns the local filesystem path for file references and bare paths.
func (r ImageRef) Path() (string, bool) {
	if r.IsEmpty() {
		return "", false
	}
	if r.isBarePath() {
		return filepath.FromSlash(string(r)), true
	}

	u, err := url.Parse(string(r))
	if err != nil || !strings.EqualFold(u.Scheme, "file") {
		return "", false
	}
	p := u.Path
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:] // /C:/pics/a.png
	}
	if p == "" {
		return "", false
	}
	return filepath.FromSlash(p), true
}

// isBarePath reports whether r carries no URI scheme. A single letter "scheme" is a Windows drive.
func (r ImageRef) isBarePath() bool {
	s := string(r)
	i := strings.Index(s, ":")
	if i < 0 {
		return true
	}
	if i == 1 {
		return true // C:\pics\a.png
	}
	return strings.ContainsAny(s[:i], `/\`)
}
