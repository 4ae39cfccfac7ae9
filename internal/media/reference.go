package media

import (
	"path"
	"strings"
)

// PublicPrefix is the URL prefix under which locally stored uploads are served.
const PublicPrefix = "/uploads"

// Reference points at image or resume content. It is an explicit tagged
// variant: either a locally-managed file under the uploads directory, or a
// remote/passthrough value the system does not own and never deletes.
type Reference struct {
	value string
	local bool
}

// ParseReference classifies a stored string reference. Anything under
// PublicPrefix is a file we own; everything else is external.
func ParseReference(s string) Reference {
	if s == "" {
		return Reference{}
	}
	return Reference{
		value: s,
		local: strings.HasPrefix(s, PublicPrefix+"/"),
	}
}

// LocalReference builds the reference for a file stored under the uploads dir.
func LocalReference(filename string) Reference {
	return Reference{value: PublicPrefix + "/" + filename, local: true}
}

// RemoteReference wraps an externally hosted URL or passthrough path.
func RemoteReference(url string) Reference {
	return Reference{value: url}
}

func (r Reference) String() string { return r.value }

// Local reports whether the referenced file lives in our uploads directory.
func (r Reference) Local() bool { return r.local }

// IsZero reports an empty reference (project without an image).
func (r Reference) IsZero() bool { return r.value == "" }

// Filename returns the base name of a local reference, "" otherwise.
func (r Reference) Filename() string {
	if !r.local {
		return ""
	}
	return path.Base(r.value)
}
