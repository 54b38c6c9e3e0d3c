package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// maxIdentifierLength bounds package identifiers; the gallery rejects longer IDs.
const maxIdentifierLength = 128

// ValidatePackageName validates a package identifier before it is embedded in
// a filter literal or a request path.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
//
// Wildcard markers are allowed; pattern shape is checked by the filter package.
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > maxIdentifierLength {
		return New(ErrCodeInvalidPackage, "package name too long (max %d characters)", maxIdentifierLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid whitespace or control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateEndpoint checks that raw is an absolute http or https URI with a host.
func ValidateEndpoint(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidEndpoint, "repository URI cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Wrap(ErrCodeInvalidEndpoint, err, "invalid repository URI %q", raw)
	}
	if !u.IsAbs() || u.Host == "" {
		return New(ErrCodeInvalidEndpoint, "repository URI %q must be absolute", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidEndpoint, "repository URI %q must use http or https scheme", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return New(ErrCodeInvalidEndpoint, "repository URI %q cannot carry a query or fragment", raw)
	}

	return nil
}
