package ir

import (
	"github.com/goccy/go-yaml"
)

// FromYAML ingests a YAML document, preserving mapping key order.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v), nil
}
