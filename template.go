package locale

import "time"

// TemplateHelpers returns template helper functions bound to e and ctx. The
// helpers hand normalized text to a rendering layer; everything else about
// the template stays the caller's business.
func TemplateHelpers(e *Engine, ctx Context) map[string]any {
	return map[string]any{
		"upper": func(s string) (string, error) {
			return e.Upper(ctx, s)
		},

		"lower": func(s string) (string, error) {
			return e.Lower(ctx, s)
		},

		"fold": func(s string) (string, error) {
			return e.Fold(ctx, s)
		},

		"sort_values": func(values []string) ([]string, error) {
			return e.Sort(ctx, values)
		},

		"format_time": func(t time.Time, pattern string) (string, error) {
			return e.FormatTime(ctx, t, pattern)
		},

		"format_number": func(v float64) (string, error) {
			return e.FormatNumber(ctx, v)
		},

		"render_path": func(path string) (string, error) {
			spec, err := e.NormalizePath(ctx, path)
			if err != nil {
				return "", err
			}
			return e.RenderPath(ctx, spec), nil
		},
	}
}
