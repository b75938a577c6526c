package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBraceIndices(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  []int
		expectErr bool
	}{
		{name: "no braces", input: "/foo/bar", expected: nil},
		{name: "single placeholder", input: "/foo/{id}", expected: []int{5, 9}},
		{name: "two placeholders", input: "/{a}/{b}", expected: []int{1, 4, 5, 8}},
		{name: "placeholder with pattern", input: "/{id:[0-9]+}", expected: []int{1, 12}},
		{name: "nested braces", input: "/{id:[0-9]{4}}", expected: []int{1, 14}},
		{name: "unbalanced open", input: "/{id", expectErr: true},
		{name: "unbalanced close", input: "/id}", expectErr: true},
		{name: "empty string", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idxs, err := braceIndices(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, idxs)
			}
		})
	}
}

func TestCompileTemplate(t *testing.T) {
	t.Run("literals and placeholders", func(t *testing.T) {
		tpl, err := compileTemplate("/articles/{category}/{id:[0-9]+}")
		require.NoError(t, err)
		assert.Equal(t, []string{"category", "id"}, varNames(tpl))
		assert.Equal(t, "[^/]+", tpl.vars[0].Pattern)
		assert.Equal(t, "[0-9]+", tpl.vars[1].Pattern)
	})

	t.Run("macro expansion", func(t *testing.T) {
		tpl, err := compileTemplate("/users/{id:int}")
		require.NoError(t, err)
		assert.Equal(t, "[0-9]+", tpl.vars[0].Pattern)
	})

	t.Run("optional marker", func(t *testing.T) {
		tpl, err := compileTemplate("/users/{id}/{tab}?")
		require.NoError(t, err)
		assert.False(t, tpl.vars[0].Optional)
		assert.True(t, tpl.vars[1].Optional)
	})

	t.Run("optional mid-template", func(t *testing.T) {
		_, err := compileTemplate("/a/{x}?/b")
		require.NoError(t, err)
	})

	t.Run("duplicated placeholder", func(t *testing.T) {
		_, err := compileTemplate("/{id}/{id}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicated placeholder")
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := compileTemplate("/{:int}")
		assert.Error(t, err)
	})

	t.Run("optional without own segment", func(t *testing.T) {
		_, err := compileTemplate("/users/x{tab}?")
		assert.Error(t, err)
	})

	t.Run("optional followed by literal text", func(t *testing.T) {
		_, err := compileTemplate("/users/{tab}?x")
		assert.Error(t, err)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := compileTemplate("/{id:[}")
		assert.Error(t, err)
	})
}

func TestTemplateMatch(t *testing.T) {
	tpl, err := compileTemplate("/users/{id:int}/{tab}?")
	require.NoError(t, err)

	t.Run("full path", func(t *testing.T) {
		vars, ok := tpl.match("/users/42/posts")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"id": "42", "tab": "posts"}, vars)
	})

	t.Run("optional segment omitted", func(t *testing.T) {
		vars, ok := tpl.match("/users/42")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"id": "42"}, vars)
	})

	t.Run("pattern rejects", func(t *testing.T) {
		_, ok := tpl.match("/users/abc")
		assert.False(t, ok)
	})

	t.Run("different path rejects", func(t *testing.T) {
		_, ok := tpl.match("/articles/42")
		assert.False(t, ok)
	})

	t.Run("captured values are percent-decoded", func(t *testing.T) {
		tpl, err := compileTemplate("/files/{name}")
		require.NoError(t, err)
		vars, ok := tpl.match("/files/a%20b")
		require.True(t, ok)
		assert.Equal(t, "a b", vars["name"])
	})
}

func TestMacroMaxLength(t *testing.T) {
	tpl, err := compileTemplate("/hosts/{h:domain}")
	require.NoError(t, err)

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, tpl.vars[0].valid(string(long)))
	assert.True(t, tpl.vars[0].valid("example.com"))
}

func varNames(tpl *pathTemplate) []string {
	names := make([]string, len(tpl.vars))
	for i, ph := range tpl.vars {
		names[i] = ph.Name
	}
	return names
}
