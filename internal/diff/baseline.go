package diff

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultBaseline lists the functions the demo module shipped with before say_goodbye.
var DefaultBaseline = []string{"greet"}

// ErrEmptyBaselineName is returned when a baseline file contains a blank entry.
var ErrEmptyBaselineName = errors.New("baseline contains an empty function name")

type baselineFile struct {
	Functions []string `yaml:"functions"`
}

// LoadBaseline reads a YAML snapshot of previously known function names. The document is
// either a plain sequence of names or a mapping with a `functions` sequence.
func LoadBaseline(path string) (NameSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline %s: %w", path, err)
	}
	names, err := parseBaseline(data)
	if err != nil {
		return nil, fmt.Errorf("parse baseline %s: %w", path, err)
	}
	return NewNameSet(names...), nil
}

func parseBaseline(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var names []string
	switch doc := node.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&names); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var file baselineFile
		if err := doc.Decode(&file); err != nil {
			return nil, err
		}
		names = file.Functions
	default:
		return nil, fmt.Errorf("expected a list of names or a functions mapping, got %s", doc.Tag)
	}

	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrEmptyBaselineName
		}
		names[i] = name
	}
	return names, nil
}
