package route

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/vitalvas/routec/param"
)

// Path builds and parses the pathname part of a location from a
// template and a parameter spec. Construct it once at route-definition
// time; a Path is immutable and safe for concurrent use.
type Path struct {
	tpl  *pathTemplate
	spec param.Spec
}

// NewPath compiles a template and binds a transformer to each of its
// placeholders. Every placeholder must have exactly one transformer in
// spec and every spec key must name a placeholder.
func NewPath(template string, spec param.Spec) (*Path, error) {
	tpl, err := compileTemplate(template)
	if err != nil {
		return nil, err
	}
	for _, ph := range tpl.vars {
		if _, ok := spec[ph.Name]; !ok {
			return nil, fmt.Errorf("route: placeholder %q in %q has no transformer", ph.Name, template)
		}
	}
	for name := range spec {
		if _, ok := tpl.index[name]; !ok {
			return nil, fmt.Errorf("route: transformer %q does not appear in template %q", name, template)
		}
	}
	bound := make(param.Spec, len(spec))
	for name, tr := range spec {
		bound[name] = tr
	}
	return &Path{tpl: tpl, spec: bound}, nil
}

// MustPath is like NewPath but panics on error. Use it for route
// definitions at package scope, like regexp.MustCompile.
func MustPath(template string, spec param.Spec) *Path {
	p, err := NewPath(template, spec)
	if err != nil {
		panic(err)
	}
	return p
}

// Build encodes the given values and interpolates them into the
// template. It fails fast: the first missing required parameter,
// encode rejection, or pattern violation is returned as a BuildError.
// Optional placeholders with no value are omitted together with their
// segment. Interpolated values are percent-escaped.
//
// A repeated value (param.ArrayOf) interpolates as one comma-joined
// string, because a path placeholder is a single-valued wire.
func (p *Path) Build(values Values) (string, error) {
	var b strings.Builder
	for _, part := range p.tpl.parts {
		if part.v < 0 {
			b.WriteString(part.lit)
			continue
		}
		ph := &p.tpl.vars[part.v]

		var raw []string
		if v, ok := values[ph.Name]; ok {
			var err error
			raw, err = p.spec[ph.Name].EncodeAny(ph.Name, v)
			if err != nil {
				return "", &BuildError{Param: ph.Name, Reason: "encode failed", Err: err}
			}
		}
		if len(raw) == 0 {
			if ph.Optional {
				continue
			}
			return "", &BuildError{Param: ph.Name, Reason: "missing required path parameter"}
		}

		s := strings.Join(raw, ",")
		if !ph.valid(s) {
			return "", &BuildError{Param: ph.Name, Reason: fmt.Sprintf("value %q does not match pattern %q", s, ph.Pattern)}
		}
		if ph.Optional {
			b.WriteByte('/')
		}
		b.WriteString(url.PathEscape(s))
	}
	return b.String(), nil
}

// Parse validates a raw parameter map against the template and decodes
// every declared placeholder.
//
// The map is checked structurally first: keys outside the placeholder
// set or required placeholders with no entry reject the whole map with
// a TemplateMismatchError. Decoding is then fail-complete: every
// placeholder is walked, optional transformers resolve silently, and
// all remaining failures come back in one ParseError. On success the
// result contains a value for every placeholder whose transformer is
// not optional-without-fallback.
func (p *Path) Parse(raw map[string]string) (Values, error) {
	var extra, missing []string
	for k := range raw {
		if _, ok := p.tpl.index[k]; !ok {
			extra = append(extra, k)
		}
	}
	for i := range p.tpl.vars {
		ph := &p.tpl.vars[i]
		if _, ok := raw[ph.Name]; !ok && !ph.Optional {
			missing = append(missing, ph.Name)
		}
	}
	if len(extra) > 0 || len(missing) > 0 {
		sort.Strings(extra)
		sort.Strings(missing)
		return nil, &TemplateMismatchError{Template: p.tpl.source, ExtraKeys: extra, MissingKeys: missing}
	}

	out := make(Values, len(p.tpl.vars))
	var failures []*param.DecodeError
	for i := range p.tpl.vars {
		ph := &p.tpl.vars[i]
		var wire []string
		if s, ok := raw[ph.Name]; ok {
			wire = []string{s}
		}
		v, present, err := p.spec[ph.Name].DecodeAny(ph.Name, wire)
		if err != nil {
			failures = append(failures, asDecodeError(ph.Name, err))
			continue
		}
		if present {
			out[ph.Name] = v
		}
	}
	if len(failures) > 0 {
		return nil, &ParseError{Failures: failures}
	}
	return out, nil
}

// Match extracts a raw parameter map from a concrete pathname using
// the compiled template, the same way an external matcher would. It
// reports false when the pathname does not match. The result feeds
// directly into Parse.
func (p *Path) Match(pathname string) (map[string]string, bool) {
	return p.tpl.match(pathname)
}

// Template returns the original template string.
func (p *Path) Template() string { return p.tpl.source }

// Regexp returns the source of the compiled matching expression.
func (p *Path) Regexp() string { return p.tpl.matchRe.String() }

// VarNames returns the placeholder names in template order.
func (p *Path) VarNames() []string {
	names := make([]string, len(p.tpl.vars))
	for i, ph := range p.tpl.vars {
		names[i] = ph.Name
	}
	return names
}

// Placeholders returns a copy of the template's placeholder
// descriptions in template order.
func (p *Path) Placeholders() []Placeholder {
	phs := make([]Placeholder, len(p.tpl.vars))
	for i, ph := range p.tpl.vars {
		phs[i] = ph.Placeholder
	}
	return phs
}

// asDecodeError normalizes a decode failure into *param.DecodeError.
func asDecodeError(name string, err error) *param.DecodeError {
	var de *param.DecodeError
	if errors.As(err, &de) {
		return de
	}
	return &param.DecodeError{Param: name, Err: err}
}
