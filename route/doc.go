// Package route implements composable, typed codecs for the parts of
// a navigational address: a templated path with named parameters, a
// query string, a hash fragment, and an opaque application state
// payload. It replaces ad-hoc string interpolation and unchecked
// conversions when building and reading locations in a single-page
// application.
//
// The package does not navigate. It produces plain Location records
// for the navigation layer's link primitives and consumes the raw
// parameter maps and location records that layer produces. All codecs
// are immutable after construction, perform no I/O and no caching,
// and are safe for concurrent use.
//
// # Path templates
//
// Templates contain literal text and placeholders in braces,
// optionally with a regular expression pattern or a pattern macro:
//
//	/users/{id:int}
//	/articles/{category}/{slug:slug}
//	/files/{name:[a-z0-9.]+}
//
// A placeholder whose closing brace is followed by ? is optional and
// must occupy a whole path segment, so the segment can be omitted
// without breaking the path's structure:
//
//	/users/{id:int}/{tab}?
//
// Available macros: uuid, int, float, slug, alpha, alphanum, date,
// hex, domain.
//
// # Defining a route
//
// Each placeholder is bound to a transformer from the param package;
// query fields get their own spec:
//
//	var userRoute = route.New(
//		route.MustPath("/users/{id:int}/{tab}?", param.Spec{
//			"id":  param.Int(),
//			"tab": param.OneOf("posts", "likes").Optional(),
//		}),
//		route.NewQuery(param.Spec{
//			"page": param.Int().OptionalOr(1),
//			"tags": param.ArrayOf(param.String()),
//		}),
//		route.NewHash("about", "subscribe"),
//		nil,
//	).Named("user")
//
// # Building
//
//	loc, err := userRoute.Build(
//		route.Values{"id": 7, "tab": "posts"},
//		route.Values{"page": 2},
//		"about",
//	)
//	// loc.Pathname == "/users/7/posts"
//	// loc.Search   == "?page=2"
//	// loc.Hash     == "#about"
//
// Building is fail-fast: a missing required parameter or a value the
// transformer rejects returns a BuildError immediately.
//
// # Parsing
//
// Parsing consumes the raw parameter map produced by the navigation
// layer's matcher and its raw location record:
//
//	parsed, err := userRoute.Parse(rawVars, route.RawLocation{
//		Search: r.URL.RawQuery,
//		Hash:   r.URL.Fragment,
//	})
//	id, _ := route.Get[int](parsed.Path, "id")
//
// Parsing is fail-complete: every declared field is walked, optional
// transformers resolve to their fallback, and all remaining failures
// are aggregated into one ParseError. A parameter map that does not
// structurally match the template is rejected with a
// TemplateMismatchError before any decoding.
//
// Each part is independently parseable via ParsePath, ParseQuery,
// ParseHash, and ParseState, so a caller does not pay for parts it
// does not need.
//
// # Standalone matching
//
// Path.Match extracts a raw parameter map from a concrete pathname
// with the template's own compiled expression, for use in tests and
// tools that have no external matcher:
//
//	vars, ok := userRoute.PathCodec().Match("/users/7/posts")
//
// # Wire-format limits
//
// A path placeholder is a single-valued wire: a repeated value
// arrives from the matcher as one comma-joined string, so an
// ArrayOf transformer on a path parameter round-trips element values
// only if they contain no commas. The query codec's default format
// carries arrays as repeated keys and has no such limit; its comma
// format shares it. See the param package for per-transformer
// normalization notes.
package route
