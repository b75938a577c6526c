package route

// patternMacros maps macro names usable in placeholder definitions
// ({name:macro}) to regular expression patterns. Macros keep templates
// readable and guarantee a known-good pattern.
var patternMacros = map[string]string{
	"uuid":     `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
	"int":      `[0-9]+`,
	"float":    `[0-9]*\.?[0-9]+`,
	"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
	"alpha":    `[a-zA-Z]+`,
	"alphanum": `[a-zA-Z0-9]+`,
	"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
	"hex":      `[0-9a-fA-F]+`,
	// RFC 1035/1123: labels 1-63 chars, total up to 253 chars.
	"domain": `(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`,
}

// macroMaxLengths holds length limits that the macro regexps alone
// cannot express.
var macroMaxLengths = map[string]int{
	"domain": 253,
}

// expandMacro resolves a placeholder pattern: a known macro name maps
// to its pattern and length limit, anything else is treated as a raw
// regular expression.
func expandMacro(pattern string) (string, int) {
	if p, ok := patternMacros[pattern]; ok {
		return p, macroMaxLengths[pattern]
	}
	return pattern, 0
}
