package route

import (
	"errors"

	"github.com/vitalvas/routec/param"
)

// Route binds one codec per location part and exposes unified build
// and parse operations plus per-part variants. All operations are pure
// delegations to the bound codecs: a Route holds no mutable state and
// caches nothing, so it is safe for concurrent use.
type Route struct {
	name  string
	path  *Path
	query *Query
	hash  *Hash
	state StateCodec
}

// New binds the given codecs into a route. Any part may be nil and
// defaults to a no-op: an absent path codec builds "/" and ignores raw
// parameter maps, an absent query codec declares no keys, an absent
// hash codec carries any value, and an absent state codec passes the
// payload through unchanged.
func New(path *Path, query *Query, hash *Hash, state StateCodec) *Route {
	if query == nil {
		query = NewQuery(nil)
	}
	if hash == nil {
		hash = NewHash()
	}
	if state == nil {
		state = passthroughState{}
	}
	return &Route{path: path, query: query, hash: hash, state: state}
}

// Named sets the route's name, used by tooling that describes route
// sets. It returns the route for chaining at definition time; do not
// rename a route that is already shared between goroutines.
func (r *Route) Named(name string) *Route {
	r.name = name
	return r
}

// Name returns the route's name, if any.
func (r *Route) Name() string { return r.name }

// PathCodec returns the bound path codec, or nil.
func (r *Route) PathCodec() *Path { return r.path }

// QueryCodec returns the bound query codec.
func (r *Route) QueryCodec() *Query { return r.query }

// HashCodec returns the bound hash codec.
func (r *Route) HashCodec() *Hash { return r.hash }

// Build produces a location without state. Building is fail-fast: the
// first violation in any part is returned.
func (r *Route) Build(pathVals, queryVals Values, hash string) (Location, error) {
	var loc Location

	loc.Pathname = "/"
	if r.path != nil {
		pathname, err := r.path.Build(pathVals)
		if err != nil {
			return Location{}, err
		}
		loc.Pathname = pathname
	}

	search, err := r.query.Build(queryVals)
	if err != nil {
		return Location{}, err
	}
	if search != "" {
		loc.Search = "?" + search
	}

	h, err := r.hash.Build(hash)
	if err != nil {
		return Location{}, err
	}
	loc.Hash = h

	return loc, nil
}

// BuildLocation is Build plus an opaque state payload encoded through
// the bound state codec.
func (r *Route) BuildLocation(state any, pathVals, queryVals Values, hash string) (Location, error) {
	loc, err := r.Build(pathVals, queryVals, hash)
	if err != nil {
		return Location{}, err
	}
	encoded, err := r.state.EncodeState(state)
	if err != nil {
		return Location{}, err
	}
	loc.State = encoded
	return loc, nil
}

// Parse decodes all four parts at once. Structural path mismatches
// (TemplateMismatchError) return immediately; decode failures are
// fail-complete across the path and query parts, aggregating into one
// ParseError so the caller sees every offending field. A state decode
// failure is joined with any aggregate.
func (r *Route) Parse(rawVars map[string]string, loc RawLocation) (Parsed, error) {
	var out Parsed
	var failures []*param.DecodeError

	if r.path != nil {
		vals, err := r.path.Parse(rawVars)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				return Parsed{}, err
			}
			failures = append(failures, pe.Failures...)
		} else {
			out.Path = vals
		}
	}

	qvals, err := r.query.Parse(loc.Search)
	if err != nil {
		var pe *ParseError
		if !errors.As(err, &pe) {
			return Parsed{}, err
		}
		failures = append(failures, pe.Failures...)
	} else {
		out.Query = qvals
	}

	out.Hash, out.HashOK = r.hash.Parse(loc.Hash)

	var stateErr error
	if loc.State != nil {
		out.State, stateErr = r.state.DecodeState(loc.State)
	}

	if len(failures) > 0 {
		agg := &ParseError{Failures: failures}
		if stateErr != nil {
			return Parsed{}, errors.Join(agg, stateErr)
		}
		return Parsed{}, agg
	}
	if stateErr != nil {
		return Parsed{}, stateErr
	}
	return out, nil
}

// ParsePath decodes only the path part from a raw parameter map.
func (r *Route) ParsePath(rawVars map[string]string) (Values, error) {
	if r.path == nil {
		return Values{}, nil
	}
	return r.path.Parse(rawVars)
}

// ParseQuery decodes only the query part of a raw location.
func (r *Route) ParseQuery(loc RawLocation) (Values, error) {
	return r.query.Parse(loc.Search)
}

// ParseHash decodes only the hash part of a raw location.
func (r *Route) ParseHash(loc RawLocation) (string, bool) {
	return r.hash.Parse(loc.Hash)
}

// ParseState decodes only the state payload of a raw location. A nil
// payload stays nil.
func (r *Route) ParseState(loc RawLocation) (any, error) {
	if loc.State == nil {
		return nil, nil
	}
	return r.state.DecodeState(loc.State)
}
