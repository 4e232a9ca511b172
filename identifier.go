package site2pdf

import (
	"encoding/base32"
	"strings"
)

// identifierPrefix keeps identifiers valid as HTML ids even when the encoded
// URL would start with a digit.
const identifierPrefix = "p"

// base32 without padding: '=' is not valid inside an HTML id or URL fragment.
var identifierEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Identify derives the merged-document anchor identifier for a canonical site
// URL. The result is a pure function of the URL string: deterministic,
// distinct for distinct URLs, and safe to use unescaped both as an HTML id
// attribute and inside a URL fragment. It never contains '#', so
// "#<id><fragment>" always splits back unambiguously.
func Identify(canonicalURL string) string {
	enc := identifierEncoding.EncodeToString([]byte(canonicalURL))
	return identifierPrefix + strings.ToLower(enc)
}
