package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/routec/route"
)

// Document is the YAML-serializable description of a route set.
type Document struct {
	Routes []RouteDoc `yaml:"routes"`
}

// RouteDoc describes one route.
type RouteDoc struct {
	Name     string     `yaml:"name"`
	Template string     `yaml:"template,omitempty"`
	Params   []ParamDoc `yaml:"params,omitempty"`
	Query    []QueryDoc `yaml:"query,omitempty"`
	Hash     []string   `yaml:"hash,omitempty"`
}

// ParamDoc describes one path placeholder.
type ParamDoc struct {
	Name     string `yaml:"name"`
	Pattern  string `yaml:"pattern,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
}

// QueryDoc describes one declared query key.
type QueryDoc struct {
	Key      string `yaml:"key"`
	Optional bool   `yaml:"optional,omitempty"`
}

// Describe renders the given routes as a YAML document. Every route
// must be named (route.Named); names must be unique. The output is
// deterministic: routes keep argument order, placeholders keep
// template order, query keys are sorted.
func Describe(routes ...*route.Route) ([]byte, error) {
	doc, err := Build(routes...)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Build collects the route metadata without serializing it, for
// callers that post-process the document.
func Build(routes ...*route.Route) (*Document, error) {
	doc := &Document{}
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		name := r.Name()
		if name == "" {
			return nil, fmt.Errorf("manifest: route with template %q has no name", template(r))
		}
		if seen[name] {
			return nil, fmt.Errorf("manifest: duplicated route name %q", name)
		}
		seen[name] = true
		doc.Routes = append(doc.Routes, describeRoute(r))
	}
	return doc, nil
}

func describeRoute(r *route.Route) RouteDoc {
	rd := RouteDoc{
		Name:     r.Name(),
		Template: template(r),
		Hash:     r.HashCodec().Allowed(),
	}
	if p := r.PathCodec(); p != nil {
		for _, ph := range p.Placeholders() {
			pattern := ph.Pattern
			if pattern == "[^/]+" {
				pattern = ""
			}
			rd.Params = append(rd.Params, ParamDoc{
				Name:     ph.Name,
				Pattern:  pattern,
				Optional: ph.Optional,
			})
		}
	}
	q := r.QueryCodec()
	for _, key := range q.Keys() {
		rd.Query = append(rd.Query, QueryDoc{
			Key:      key,
			Optional: q.Optional(key),
		})
	}
	return rd
}

func template(r *route.Route) string {
	if p := r.PathCodec(); p != nil {
		return p.Template()
	}
	return ""
}
