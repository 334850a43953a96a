package cprint

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config selects the facade a set of print functions is built on.
type Config struct {
	Writer Kind   `yaml:"writer"`
	Policy Policy `yaml:"policy"`
	Render string `yaml:"render,omitempty"`
}

// DefaultConfig returns a fail-fast concat configuration with %#v rendering.
func DefaultConfig() Config {
	return Config{Writer: Concat, Policy: Expect, Render: RenderGoSyntax}
}

// UnmarshalYAML decodes and validates a writer kind.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// UnmarshalYAML decodes and validates an error policy.
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// LoadConfig decodes a YAML configuration from r. Fields missing from the
// document keep their DefaultConfig values; unknown fields are an error.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := ParseRenderer(c.Render); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WriteConfig encodes c as YAML to w.
func WriteConfig(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
