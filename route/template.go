package route

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// defaultPattern matches a single path segment.
const defaultPattern = "[^/]+"

// Placeholder describes one named variable of a path template.
type Placeholder struct {
	// Name is the placeholder name, unique within the template.
	Name string
	// Pattern is the regular expression the value must match, after
	// macro expansion.
	Pattern string
	// Optional reports whether the placeholder's segment may be
	// absent from the path entirely.
	Optional bool
}

// placeholderSpec pairs a Placeholder with its compiled validation
// regexp and length limit.
type placeholderSpec struct {
	Placeholder
	re     *regexp.Regexp
	maxLen int
}

// valid reports whether a raw value satisfies the placeholder pattern.
func (p *placeholderSpec) valid(s string) bool {
	if p.maxLen > 0 && len(s) > p.maxLen {
		return false
	}
	return p.re.MatchString(s)
}

// templatePart is one piece of the interpolation skeleton: either a
// literal chunk or a reference into the placeholder list. An optional
// placeholder part owns its leading slash, so omitting the part keeps
// the path well-formed.
type templatePart struct {
	lit string
	v   int // index into vars, -1 for a literal part
}

// pathTemplate is the compiled form of a path template string. It is
// immutable after compilation and safe for concurrent use.
type pathTemplate struct {
	source  string
	parts   []templatePart
	vars    []placeholderSpec
	index   map[string]int
	matchRe *regexp.Regexp
}

// compileTemplate parses a template string into its compiled form.
//
// Syntax: literal text plus placeholders in braces, optionally with a
// pattern ({name}, {name:[0-9]+}, {name:int}). A placeholder whose
// closing brace is followed by ? is optional and must occupy a whole
// path segment, e.g. /users/{id}/{tab}?.
func compileTemplate(tpl string) (*pathTemplate, error) {
	idxs, err := braceIndices(tpl)
	if err != nil {
		return nil, err
	}

	var (
		parts   []templatePart
		vars    []placeholderSpec
		pattern strings.Builder
		end     int
	)

	pattern.WriteByte('^')

	for i := 0; i < len(idxs); i += 2 {
		start, stop := idxs[i], idxs[i+1]
		raw := tpl[end:start]
		inner := tpl[start+1 : stop-1]
		end = stop

		optional := false
		if end < len(tpl) && tpl[end] == '?' {
			optional = true
			end++
		}

		nameAndPatt := strings.SplitN(inner, ":", 2)
		name := nameAndPatt[0]
		if name == "" {
			return nil, fmt.Errorf("route: missing placeholder name in %q from %q", tpl[start:stop], tpl)
		}

		patt := defaultPattern
		maxLen := 0
		if len(nameAndPatt) == 2 {
			patt, maxLen = expandMacro(nameAndPatt[1])
		}

		if optional {
			if !strings.HasSuffix(raw, "/") || (end < len(tpl) && tpl[end] != '/') {
				return nil, fmt.Errorf("route: optional placeholder %q must occupy a whole path segment in %q", name, tpl)
			}
			// The slash moves into the optional group so the whole
			// segment disappears together.
			raw = raw[:len(raw)-1]
		}

		if raw != "" {
			parts = append(parts, templatePart{lit: raw, v: -1})
		}
		pattern.WriteString(regexp.QuoteMeta(raw))

		varRe, err := compileRegexp("^(?:" + patt + ")$")
		if err != nil {
			return nil, fmt.Errorf("route: invalid pattern %q in placeholder %q: %w", patt, name, err)
		}

		parts = append(parts, templatePart{v: len(vars)})
		if optional {
			fmt.Fprintf(&pattern, "(?:/(%s))?", patt)
		} else {
			fmt.Fprintf(&pattern, "(%s)", patt)
		}

		vars = append(vars, placeholderSpec{
			Placeholder: Placeholder{Name: name, Pattern: patt, Optional: optional},
			re:          varRe,
			maxLen:      maxLen,
		})
	}

	if tail := tpl[end:]; tail != "" {
		parts = append(parts, templatePart{lit: tail, v: -1})
		pattern.WriteString(regexp.QuoteMeta(tail))
	}
	pattern.WriteByte('$')

	index := make(map[string]int, len(vars))
	for i, ph := range vars {
		if _, dup := index[ph.Name]; dup {
			return nil, fmt.Errorf("route: duplicated placeholder %q in %q", ph.Name, tpl)
		}
		index[ph.Name] = i
	}

	matchRe, err := compileRegexp(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("route: invalid template %q: %w", tpl, err)
	}

	return &pathTemplate{
		source:  tpl,
		parts:   parts,
		vars:    vars,
		index:   index,
		matchRe: matchRe,
	}, nil
}

// match extracts raw placeholder values from a concrete pathname.
// Captured values are percent-decoded; a non-participating optional
// group leaves its placeholder out of the result.
func (t *pathTemplate) match(pathname string) (map[string]string, bool) {
	m := t.matchRe.FindStringSubmatch(pathname)
	if m == nil {
		return nil, false
	}
	vars := make(map[string]string, len(t.vars))
	for i, ph := range t.vars {
		val := m[i+1]
		if val == "" && ph.Optional {
			continue
		}
		if u, err := url.PathUnescape(val); err == nil {
			val = u
		}
		vars[ph.Name] = val
	}
	return vars, true
}

// braceIndices returns the start and end+1 indices of each top-level
// {...} pair in s, or an error for unbalanced braces.
func braceIndices(s string) ([]int, error) {
	var (
		idxs  []int
		level int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				idxs = append(idxs, i)
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, i+1)
			} else if level < 0 {
				return nil, fmt.Errorf("route: unbalanced braces in %q", s)
			}
		}
	}
	if level != 0 {
		return nil, fmt.Errorf("route: unbalanced braces in %q", s)
	}
	return idxs, nil
}
