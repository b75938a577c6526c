package route

import (
	"regexp"
	"sync"
)

// regexpCache memoizes compiled regular expressions by pattern string.
// Route definitions are created once at startup, so the cache grows to
// the number of distinct patterns and stays there. A concurrent first
// use may compile the same pattern twice; LoadOrStore keeps the result
// deterministic without a lock.
var regexpCache sync.Map

// compileRegexp returns a cached *regexp.Regexp for the pattern,
// compiling it on first use.
func compileRegexp(pattern string) (*regexp.Regexp, error) {
	if v, ok := regexpCache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := regexpCache.LoadOrStore(pattern, re)

	return actual.(*regexp.Regexp), nil
}
