package extract

import "strings"

// FunctionRecord describes one Python function definition found in a source file.
type FunctionRecord struct {
	// Name is the declared identifier.
	Name string
	// Parameters holds the positional-or-keyword parameter names in declaration order.
	Parameters []string
	// Docstring is the cleaned docstring. Only meaningful when HasDocstring is set.
	Docstring    string
	HasDocstring bool
	// Source is the exact text of the definition, from `def` (or `async`) to the end of the body.
	Source string
	// StartLine and EndLine are 1-based.
	StartLine int
	EndLine   int
}

// Signature reconstructs a call signature such as `greet(name)`.
func (r FunctionRecord) Signature() string {
	return r.Name + "(" + strings.Join(r.Parameters, ", ") + ")"
}

// Names returns the record names in order, duplicates included.
func Names(records []FunctionRecord) []string {
	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	return names
}
