package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Extract:
// - Demo module yields greet and say_goodbye with cleaned docstrings
// - Nested functions and methods are reported after their enclosing definition
// - Parameter lists keep only positional-or-keyword names
// - Functions without a docstring report HasDocstring=false
// - Source holds the verbatim definition text, decorators excluded
// - Invalid syntax, including Python 2 statements and misordered defaults, returns a
//   *ParseError with a position
// - CRLF and CR line endings are read as LF
// - Empty input yields an empty, non-nil slice

func TestExtract_DemoModule(t *testing.T) {
	t.Parallel()

	source, err := os.ReadFile(filepath.Join("..", "..", "testdata", "demo", "main.py"))
	require.NoError(t, err)

	records, err := Extract(source)
	require.NoError(t, err)
	require.Len(t, records, 2)

	greet := records[0]
	assert.Equal(t, "greet", greet.Name)
	assert.Equal(t, []string{"name"}, greet.Parameters)
	assert.True(t, greet.HasDocstring)
	assert.Equal(t, "Greets the given name.\n\nArgs:\n    name: The name to greet.\n\nReturns:\n    A greeting string.", greet.Docstring)
	assert.Equal(t, 1, greet.StartLine)
	assert.Equal(t, 11, greet.EndLine)
	assert.Equal(t, "greet(name)", greet.Signature())

	bye := records[1]
	assert.Equal(t, "say_goodbye", bye.Name)
	assert.Equal(t, []string{"name"}, bye.Parameters)
	assert.Contains(t, bye.Source, "def say_goodbye(name: str) -> str:")
	assert.Contains(t, bye.Source, `return f"Goodbye, {name}!"`)
	assert.NotContains(t, bye.Source, "__main__")
}

func TestExtract_PreOrderIncludesNested(t *testing.T) {
	t.Parallel()

	source := []byte(`def outer(a):
    def inner(b):
        def innermost():
            pass
        return innermost
    return inner

class Greeter:
    def hello(self, who):
        return who

def last():
    pass
`)
	records, err := Extract(source)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "innermost", "hello", "last"}, Names(records))
	assert.Equal(t, []string{"self", "who"}, records[3].Parameters)
}

func TestExtract_Parameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"plain", "def f(a, b):\n    pass\n", []string{"a", "b"}},
		{"none", "def f():\n    pass\n", []string{}},
		{"defaults and annotations", "def f(a: int, b=1, c: str = 'x'):\n    pass\n", []string{"a", "b", "c"}},
		{"variadic", "def f(a, *args, b, **kwargs):\n    pass\n", []string{"a"}},
		{"keyword only", "def f(a, *, b, c=2):\n    pass\n", []string{"a"}},
		{"positional only", "def f(a, b, /, c, d=1):\n    pass\n", []string{"c", "d"}},
		{"only splats", "def f(*args, **kwargs):\n    pass\n", []string{}},
		{"typed splat", "def f(a, *args: int):\n    pass\n", []string{"a"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			records, err := Extract([]byte(tt.source))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].Parameters)
		})
	}
}

func TestExtract_Docstrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		want    string
		present bool
	}{
		{"absent", "def f():\n    return 1\n", "", false},
		{"single line", "def f():\n    \"\"\"  Does f.  \"\"\"\n", "Does f.", true},
		{"single quotes", "def f():\n    'Does f.'\n", "Does f.", true},
		{"empty literal", "def f():\n    \"\"\"\"\"\"\n", "", true},
		{"raw", "def f():\n    r\"\"\"Match \\d+.\"\"\"\n", `Match \d+.`, true},
		{"escapes", "def f():\n    \"Line one.\\nLine two.\"\n", "Line one.\nLine two.", true},
		{"concatenated", "def f():\n    \"Part one, \" \"part two.\"\n", "Part one, part two.", true},
		{"comment first", "def f():\n    # note\n    \"\"\"Doc.\"\"\"\n", "Doc.", true},
		{"fstring is not a docstring", "def f(x):\n    f\"{x}\"\n", "", false},
		{"bytes is not a docstring", "def f():\n    b\"raw\"\n", "", false},
		{"string after statement", "def f():\n    x = 1\n    \"\"\"Late.\"\"\"\n", "", false},
		{"string in expression", "def f():\n    \"a\" + \"b\"\n", "", false},
		{"crlf", "def f():\r\n    \"\"\"\r\n    Line one.\r\n\r\n    Line two.\r\n    \"\"\"\r\n", "Line one.\n\nLine two.", true},
		{"lone cr", "def f():\r    \"\"\"Top.\r\r    Body.\r    \"\"\"\r", "Top.\n\nBody.", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			records, err := Extract([]byte(tt.source))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.present, records[0].HasDocstring)
			assert.Equal(t, tt.want, records[0].Docstring)
		})
	}
}

func TestExtract_SourceText(t *testing.T) {
	t.Parallel()

	source := []byte("import functools\n\n@functools.cache\ndef cached(n):\n    return n * 2\n\nasync def fetch(url):\n    return url\n")
	records, err := Extract(source)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "def cached(n):\n    return n * 2", records[0].Source)
	assert.Equal(t, 4, records[0].StartLine)
	assert.Equal(t, "fetch", records[1].Name)
	assert.Equal(t, "async def fetch(url):\n    return url", records[1].Source)
}

func TestExtract_ParseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		line   int
	}{
		{"unclosed parameters", "def ok():\n    pass\n\ndef broken(:\n    pass\n", 0},
		{"print statement", "def f():\n    print \"hi\"\n", 2},
		{"exec statement", "exec \"x = 1\"\n", 1},
		{"required after default", "def f(a=1, b):\n    pass\n", 1},
		{"typed required after default", "def f(a: int = 1, b: int):\n    pass\n", 1},
		{"required after default across slash", "def f(a=1, /, b):\n    pass\n", 1},
		{"nested required after default", "def outer():\n    def inner(a=1, b):\n        pass\n", 2},
		{"lambda required after default", "g = lambda a=1, b: a\n", 1},
		{"tuple parameter", "def f((a, b)):\n    pass\n", 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			records, err := Extract([]byte(tt.source))
			require.Error(t, err)
			assert.Nil(t, records)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			if tt.line > 0 {
				assert.Equal(t, tt.line, parseErr.Line)
			} else {
				assert.Positive(t, parseErr.Line)
			}
			assert.Contains(t, err.Error(), "invalid python syntax")
		})
	}
}

func TestExtract_AcceptsPython3Forms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{"print call", "def f():\n    print(\"hi\")\n"},
		{"keyword-only after star", "def f(a=1, *, b):\n    pass\n"},
		{"keyword-only after varargs", "def f(a=1, *args, b, **kw):\n    pass\n"},
		{"defaults after positional-only", "def f(a, /, b=2):\n    pass\n"},
		{"lambda defaults", "g = lambda a, b=1: a\ndef f():\n    pass\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			records, err := Extract([]byte(tt.source))
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "f", records[0].Name)
		})
	}
}

func TestExtract_CRLF(t *testing.T) {
	t.Parallel()

	source := []byte("def f(a):\r\n    \"\"\"\r\n    Line one.\r\n\r\n    Line two.\r\n    \"\"\"\r\n    return a\r\n")
	records, err := Extract(source)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Line one.\n\nLine two.", rec.Docstring)
	assert.Equal(t, "def f(a):\n    \"\"\"\n    Line one.\n\n    Line two.\n    \"\"\"\n    return a", rec.Source)
	assert.NotContains(t, rec.Source, "\r")
	assert.Equal(t, 1, rec.StartLine)
	assert.Equal(t, 7, rec.EndLine)
}

func TestExtract_Empty(t *testing.T) {
	t.Parallel()

	records, err := Extract(nil)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestExtract_Deterministic(t *testing.T) {
	t.Parallel()

	source := []byte("def a():\n    def b():\n        pass\n\ndef c(x):\n    \"\"\"C.\"\"\"\n")
	first, err := Extract(source)
	require.NoError(t, err)
	second, err := New().Extract(source)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
