package golist

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ToJSON encodes the elements as a JSON array. Only the valid prefix is
// encoded, never the spare capacity; an empty list encodes as [].
func (l *List[T]) ToJSON() ([]byte, error) {
	data, err := json.Marshal(l.view())
	if err != nil {
		return nil, fmt.Errorf("encode list to JSON: %w", err)
	}
	return data, nil
}

// FromJSON replaces the list contents with the elements of a JSON array.
// The existing buffer is reused when its capacity suffices and grows
// exactly once otherwise. Allocator and equality configuration carry over.
func (l *List[T]) FromJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode list from JSON: %w", err)
	}
	l.replace(values)
	return nil
}

// MarshalJSON implements json.Marshaler, so a List embeds naturally in
// larger encoded structures.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return l.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	return l.FromJSON(data)
}

// MarshalYAML implements yaml.Marshaler. The list encodes as a YAML
// sequence of its elements.
func (l *List[T]) MarshalYAML() (any, error) {
	return l.view(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same replacement
// semantics as FromJSON.
func (l *List[T]) UnmarshalYAML(node *yaml.Node) error {
	var values []T
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("decode list from YAML: %w", err)
	}
	l.replace(values)
	return nil
}

// replace swaps in decoded contents: clear the valid prefix, ensure
// capacity, bulk copy.
func (l *List[T]) replace(values []T) {
	l.Clear()
	l.AddAll(values...)
}

// String renders the valid elements in index order.
func (l *List[T]) String() string {
	return fmt.Sprintf("List%v", l.view())
}
