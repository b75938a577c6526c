package route

// Hash builds and parses the hash fragment of a location. A hash is
// always optional by construction: there is no required-hash mode,
// because fragments are even more freely user-editable than query
// strings. The zero value is a usable codec with no allow-list.
type Hash struct {
	allowed []string
}

// NewHash returns a hash codec. With no arguments any value is
// carried verbatim; with arguments, both build and parse enforce
// membership in the given set of literals.
func NewHash(allowed ...string) *Hash {
	h := &Hash{}
	if len(allowed) > 0 {
		h.allowed = make([]string, len(allowed))
		copy(h.allowed, allowed)
	}
	return h
}

// Build returns the value prefixed with "#", or the empty string when
// the value is empty. An out-of-set value under an allow-list is a
// BuildError: building is the application's own code path, so a bad
// value there is a bug worth surfacing.
func (h *Hash) Build(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if h.allowed != nil && !h.member(value) {
		return "", &BuildError{Param: "hash", Reason: "value " + value + " is not in the allowed set"}
	}
	return "#" + value, nil
}

// Parse strips a leading "#" if present and reports whether a value
// was obtained. Under an allow-list an out-of-set value is treated as
// absent rather than an error.
func (h *Hash) Parse(raw string) (string, bool) {
	if len(raw) > 0 && raw[0] == '#' {
		raw = raw[1:]
	}
	if raw == "" {
		return "", false
	}
	if h.allowed != nil && !h.member(raw) {
		return "", false
	}
	return raw, true
}

// Allowed returns a copy of the allow-list, or nil when the codec is
// unconstrained.
func (h *Hash) Allowed() []string {
	if h.allowed == nil {
		return nil
	}
	out := make([]string, len(h.allowed))
	copy(out, h.allowed)
	return out
}

func (h *Hash) member(v string) bool {
	for _, a := range h.allowed {
		if a == v {
			return true
		}
	}
	return false
}
