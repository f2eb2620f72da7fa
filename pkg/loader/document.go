package loader

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fewshot/pkg/tags"
)

type documentFile struct {
	Forms []elementFile `json:"forms" yaml:"forms"`
}

type elementFile struct {
	Kind           string        `json:"kind" yaml:"kind"`
	ID             string        `json:"id" yaml:"id"`
	Description    string        `json:"description" yaml:"description"`
	Multiple       bool          `json:"multiple" yaml:"multiple"`
	CustomTypeName string        `json:"customTypeName" yaml:"customTypeName"`
	Examples       []exampleFile `json:"examples" yaml:"examples"`
	Options        []optionFile  `json:"options" yaml:"options"`
	NullExamples   []string      `json:"nullExamples" yaml:"nullExamples"`
	Elements       []elementFile `json:"elements" yaml:"elements"`
}

type optionFile struct {
	ID          string   `json:"id" yaml:"id"`
	Description string   `json:"description" yaml:"description"`
	Examples    []string `json:"examples" yaml:"examples"`
}

type exampleFile struct {
	Text   string              `json:"text" yaml:"text"`
	Value  rawValue            `json:"value" yaml:"value"`
	Values map[string]rawValue `json:"values" yaml:"values"`
}

var errInvalidValue = errors.New("value must be a string or a list of strings")

// rawValue decodes either a scalar or a sequence into a tags.Value.
type rawValue struct {
	value tags.Value
}

func (r *rawValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		r.value = tags.Single(single)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errInvalidValue
	}
	r.value = tags.List(list...)
	return nil
}

func (r *rawValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, errInvalidValue)
		}
		r.value = tags.Single(single)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, errInvalidValue)
		}
		r.value = tags.List(list...)
		return nil
	default:
		return fmt.Errorf("line %d: %w", node.Line, errInvalidValue)
	}
}
