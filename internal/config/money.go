package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Money is a decimal amount that unmarshals from a YAML scalar. Amounts are
// written as plain strings in promotion configs ("5", "2.50") so ticket
// arithmetic stays exact; float YAML scalars would round.
type Money struct {
	decimal.Decimal
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Money) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("money amount must be a scalar, got %v", value.Kind)
	}
	if value.Value == "" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", value.Value, err)
	}
	m.Decimal = d
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Money) MarshalYAML() (interface{}, error) {
	return m.Decimal.String(), nil
}
