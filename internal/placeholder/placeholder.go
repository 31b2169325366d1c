package placeholder

import "strings"

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Render replaces every {{name}} in tmpl whose name is a key of bindings with
// the bound value. Values are inserted verbatim and never re-scanned.
func Render(tmpl string, bindings map[string]string) string {
	if !strings.Contains(tmpl, openDelim) {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl))

	rest := tmpl
	for {
		start := strings.Index(rest, openDelim)
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}

		name, end, ok := scan(rest, start)
		if !ok {
			// Emit one byte and retry so "{{{x}}}" still finds "{{x}}".
			b.WriteString(rest[:start+1])
			rest = rest[start+1:]
			continue
		}

		b.WriteString(rest[:start])
		if value, found := bindings[name]; found {
			b.WriteString(value)
		} else {
			b.WriteString(rest[start:end])
		}
		rest = rest[end:]
	}
}

// Names returns the distinct placeholder names referenced by tmpl, in order
// of first appearance.
func Names(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)

	rest := tmpl
	for {
		start := strings.Index(rest, openDelim)
		if start < 0 {
			return names
		}
		name, end, ok := scan(rest, start)
		if !ok {
			rest = rest[start+1:]
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		rest = rest[end:]
	}
}

// Missing returns the placeholder names in tmpl that have no binding.
func Missing(tmpl string, bindings map[string]string) []string {
	var missing []string
	for _, name := range Names(tmpl) {
		if _, ok := bindings[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// scan parses the token opening at s[start:]. It returns the name and the
// index just past the closing delimiter.
func scan(s string, start int) (name string, end int, ok bool) {
	body := s[start+len(openDelim):]
	closeAt := strings.Index(body, closeDelim)
	if closeAt <= 0 {
		return "", 0, false
	}
	name = body[:closeAt]
	if strings.ContainsAny(name, "{}") {
		return "", 0, false
	}
	return name, start + len(openDelim) + closeAt + len(closeDelim), true
}
