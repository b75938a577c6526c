package route

// Location is the serializable output of Build and BuildLocation,
// consumed by the navigation layer's link and navigation primitives.
type Location struct {
	// Pathname is the interpolated path.
	Pathname string
	// Search is the serialized query string including its leading
	// "?", or empty.
	Search string
	// Hash is the fragment including its leading "#", or empty.
	Hash string
	// State is the opaque payload attached by BuildLocation, nil
	// otherwise.
	State any
}

// RawLocation is the location record the navigation layer hands back
// for parsing.
type RawLocation struct {
	// Search is the raw query string, with or without a leading "?".
	Search string
	// Hash is the raw fragment, with or without a leading "#".
	Hash string
	// State is whatever opaque payload the navigation layer attached.
	State any
}

// Parsed holds the decoded parts of a location, each independently
// obtainable through the per-part Parse methods.
type Parsed struct {
	// Path holds the decoded path parameters.
	Path Values
	// Query holds the decoded query parameters.
	Query Values
	// Hash is the fragment value; HashOK reports whether one was
	// present and, under an allow-list, a member of the set.
	Hash   string
	HashOK bool
	// State is the decoded opaque payload.
	State any
}
