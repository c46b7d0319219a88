package stdlib

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler.
func (f Field) MarshalYAML() (interface{}, error) {
	out := make(map[string]any)

	switch f.Kind.Type {
	case KindAny:
		out["any"] = true
	case KindFunction:
		behavior := f.Kind.Function
		if behavior == nil {
			behavior = &FunctionBehavior{}
		}
		args := behavior.Arguments
		if args == nil {
			args = []Argument{}
		}
		out["args"] = args
		if behavior.Method {
			out["method"] = true
		}
		if behavior.MustUse {
			out["must_use"] = true
		}
	case KindProperty:
		if !f.Kind.Writability.valid() {
			return nil, fmt.Errorf("invalid property writability %q", f.Kind.Writability)
		}
		out["property"] = string(f.Kind.Writability)
	case KindStruct:
		out["struct"] = f.Kind.Struct
	case KindRemoved:
		out["removed"] = true
	default:
		return nil, fmt.Errorf("unknown field kind %d", f.Kind.Type)
	}

	if f.Deprecated != nil {
		deprecated := *f.Deprecated
		if deprecated.Replace == nil {
			deprecated.Replace = []string{}
		}
		out["deprecated"] = deprecated
	}

	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Any        *bool                `yaml:"any"`
		Args       *[]Argument          `yaml:"args"`
		Method     bool                 `yaml:"method"`
		MustUse    bool                 `yaml:"must_use"`
		Property   *PropertyWritability `yaml:"property"`
		Struct     *string              `yaml:"struct"`
		Removed    *bool                `yaml:"removed"`
		Deprecated *Deprecated          `yaml:"deprecated"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	switch {
	case raw.Removed != nil && *raw.Removed:
		f.Kind = RemovedKind()
	case raw.Args != nil:
		f.Kind = FunctionKind(FunctionBehavior{
			Arguments: *raw.Args,
			Method:    raw.Method,
			MustUse:   raw.MustUse,
		})
	case raw.Property != nil:
		if !raw.Property.valid() {
			return fmt.Errorf("line %d: invalid property writability %q", node.Line, *raw.Property)
		}
		f.Kind = PropertyKind(*raw.Property)
	case raw.Struct != nil:
		f.Kind = StructKind(*raw.Struct)
	case raw.Any != nil && *raw.Any:
		f.Kind = AnyKind()
	default:
		return fmt.Errorf("line %d: unrecognized field", node.Line)
	}

	f.Deprecated = raw.Deprecated
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A missing replace list decodes as empty.
func (d *Deprecated) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Message string   `yaml:"message"`
		Replace []string `yaml:"replace"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Replace == nil {
		raw.Replace = []string{}
	}
	*d = Deprecated(raw)
	return nil
}

// MarshalYAML implements yaml.Marshaler. Default values are omitted.
func (a Argument) MarshalYAML() (interface{}, error) {
	out := map[string]any{"type": a.Type}
	if a.Required != (Required{}) {
		out["required"] = a.Required
	}
	if a.Observes != ObservesReadWrite {
		out["observes"] = a.Observes
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Argument) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Type     ArgumentType `yaml:"type"`
		Required Required     `yaml:"required"`
		Observes Observes     `yaml:"observes"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*a = Argument(raw)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t ArgumentType) MarshalYAML() (interface{}, error) {
	switch t.Kind {
	case ArgConstant:
		values := t.Constants
		if values == nil {
			values = []string{}
		}
		return values, nil
	case ArgDisplay:
		return map[string]string{"display": t.Display}, nil
	}
	name, ok := argumentTypeNames[t.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown argument type %d", t.Kind)
	}
	return name, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *ArgumentType) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		for kind, name := range argumentTypeNames {
			if name == node.Value {
				*t = ArgumentType{Kind: kind}
				return nil
			}
		}
		return fmt.Errorf("line %d: unknown argument type %q", node.Line, node.Value)

	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return err
		}
		*t = ConstantArgument(values)
		return nil

	case yaml.MappingNode:
		var display struct {
			Display string `yaml:"display"`
		}
		if err := node.Decode(&display); err != nil {
			return err
		}
		*t = ArgumentType{Kind: ArgDisplay, Display: display.Display}
		return nil
	}
	return fmt.Errorf("line %d: invalid argument type", node.Line)
}

// MarshalYAML implements yaml.Marshaler.
func (r Required) MarshalYAML() (interface{}, error) {
	switch {
	case r.Optional:
		return false, nil
	case r.Message != "":
		return r.Message, nil
	default:
		return true, nil
	}
}

// UnmarshalYAML implements yaml.Unmarshaler. Booleans select required or not,
// any other scalar is the message reported when the argument is missing.
func (r *Required) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: required must be a boolean or a string", node.Line)
	}
	if node.ShortTag() == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*r = Required{Optional: !b}
		return nil
	}
	*r = RequiredWithMessage(node.Value)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Observes) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Observes) UnmarshalYAML(node *yaml.Node) error {
	switch node.Value {
	case "read-write":
		*o = ObservesReadWrite
	case "read":
		*o = ObservesRead
	case "write":
		*o = ObservesWrite
	default:
		return fmt.Errorf("line %d: unknown observes value %q", node.Line, node.Value)
	}
	return nil
}

// Parse decodes a descriptor layer. The base chain is not resolved.
func Parse(data []byte) (*StandardLibrary, error) {
	lib := &StandardLibrary{}
	if err := yaml.Unmarshal(data, lib); err != nil {
		return nil, fmt.Errorf("failed to parse standard library: %w", err)
	}
	lib.ensureTables()
	return lib, nil
}

// Encode writes s as YAML. Mapping keys are sorted so output is stable.
func (s *StandardLibrary) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode standard library: %w", err)
	}
	return enc.Close()
}

// Marshal returns the YAML encoding of s.
func Marshal(s *StandardLibrary) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
