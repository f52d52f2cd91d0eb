package locale

import (
	"fmt"
	"strings"
)

// PathConvention carries the explicit path parameters. The zero value means
// forward slashes and no home directory; the process working directory and
// HOME never participate.
type PathConvention struct {
	// Separator is the byte used when rendering, "/" or "\". Empty means "/".
	Separator string
	// Home is the expansion of a leading "~" segment. Empty leaves "~"
	// unexpandable and normalization of such a path fails.
	Home string
}

// PathSpec is a parsed path, independent of any separator convention. Both
// "/" and "\" split segments on input; runs of separators collapse. Dot
// segments are kept verbatim because resolving them needs a filesystem.
type PathSpec struct {
	// Volume is a drive anchor like "C:", or empty.
	Volume string
	// Absolute records whether the path is anchored at a root. A non empty
	// Volume always anchors.
	Absolute bool
	Segments []string
}

// NormalizePath parses path under conv. A leading "~" segment expands to
// conv.Home, which is itself normalized; "~" with no Home is an error, and
// "~user" forms stay literal segments.
func NormalizePath(path string, conv PathConvention) (PathSpec, error) {
	if strings.IndexByte(path, 0) >= 0 {
		return PathSpec{}, fmt.Errorf("%w: NUL byte in %q", ErrInvalidPath, path)
	}
	if path == "" {
		return PathSpec{}, nil
	}

	spec := PathSpec{
		Absolute: path[0] == '/' || path[0] == '\\',
		Segments: splitPathSegments(path),
	}

	if len(spec.Segments) > 0 && spec.Segments[0] == "~" {
		if conv.Home == "" {
			return PathSpec{}, fmt.Errorf("%w: %q needs an explicit home directory", ErrInvalidPath, path)
		}
		home, err := NormalizePath(conv.Home, PathConvention{})
		if err != nil {
			return PathSpec{}, err
		}
		home.Segments = append(home.Segments, spec.Segments[1:]...)
		return home, nil
	}

	if len(spec.Segments) > 0 && isDriveSegment(spec.Segments[0]) {
		spec.Volume = spec.Segments[0]
		spec.Segments = spec.Segments[1:]
		spec.Absolute = true
	}
	if len(spec.Segments) == 0 {
		spec.Segments = nil
	}
	return spec, nil
}

func splitPathSegments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

func isDriveSegment(seg string) bool {
	if len(seg) != 2 || seg[1] != ':' {
		return false
	}
	c := seg[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Render joins the path with sep, which defaults to "/" when empty. The
// same PathSpec renders identically everywhere; only sep varies the output.
func (p PathSpec) Render(sep string) string {
	if sep == "" {
		sep = "/"
	}
	joined := strings.Join(p.Segments, sep)
	switch {
	case p.Volume != "":
		return p.Volume + sep + joined
	case p.Absolute:
		return sep + joined
	default:
		return joined
	}
}

// String renders with "/", the canonical form.
func (p PathSpec) String() string {
	return p.Render("/")
}

// NormalizePath parses path under the Context path convention.
func (e *Engine) NormalizePath(ctx Context, path string) (PathSpec, error) {
	return NormalizePath(path, ctx.Path)
}

// RenderPath joins spec with the Context separator.
func (e *Engine) RenderPath(ctx Context, spec PathSpec) string {
	return spec.Render(ctx.Path.Separator)
}
