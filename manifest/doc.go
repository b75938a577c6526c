// Package manifest renders a set of named routes as a YAML document:
// each route's path template, placeholder patterns and optionality,
// declared query keys, and hash allow-list.
//
// The document is a description, not configuration: routes are always
// defined in code, and the manifest is derived from them for docs,
// review diffs, or client generators. Describe returns bytes; writing
// them anywhere is the caller's business.
//
//	out, err := manifest.Describe(userRoute, searchRoute)
//
// produces:
//
//	routes:
//	    - name: user
//	      template: /users/{id:int}/{tab}?
//	      params:
//	        - name: id
//	          pattern: '[0-9]+'
//	        - name: tab
//	          optional: true
//	      query:
//	        - key: page
//	          optional: true
//	      hash:
//	        - about
//	        - subscribe
package manifest
