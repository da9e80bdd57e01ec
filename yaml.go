package orderedmap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = &OrderedMap[int, any]{}
	_ yaml.Unmarshaler = &OrderedMap[int, any]{}
)

// MarshalYAML implements the yaml.Marshaler interface. The map is encoded as
// a YAML mapping whose entries appear in insertion order.
func (om *OrderedMap[K, V]) MarshalYAML() (any, error) {
	if om == nil {
		return nil, nil
	}

	node := yaml.Node{
		Kind: yaml.MappingNode,
	}

	for _, key := range om.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(om.entries[key].value); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return &node, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. The entries of the
// incoming YAML mapping are inserted in document order; if a key repeats, the
// first occurrence wins.
func (om *OrderedMap[K, V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("cannot unmarshal %v into an ordered map: not a mapping", value.Kind)
	}

	if om.entries == nil {
		om.initialize(len(value.Content) / 2)
	}

	for i := 0; i < len(value.Content); i += 2 {
		var key K
		if err := value.Content[i].Decode(&key); err != nil {
			return err
		}

		var val V
		if err := value.Content[i+1].Decode(&val); err != nil {
			return err
		}

		_, _ = om.Insert(key, val)
	}

	return nil
}
