package roblox

import (
	"fmt"

	"github.com/leapstack-labs/robloxstd/pkg/apidump"
	"github.com/leapstack-labs/robloxstd/pkg/stdlib"
)

// WildcardMember is the struct key matched by members not listed explicitly.
const WildcardMember = "*"

// InstanceStruct is the baseline struct unknown members of any class fall back to.
const InstanceStruct = "Instance"

const deprecatedMessage = "this property is deprecated."

// writeClassStruct synthesizes the struct for className unless it already exists.
// The key is reserved before the members are walked so that properties typed as the
// class itself resolve to the placeholder instead of recursing.
func (r *generation) writeClassStruct(className string) error {
	if _, ok := r.std.Structs[className]; ok {
		return nil
	}
	r.std.Structs[className] = map[string]stdlib.Field{}

	table := map[string]stdlib.Field{
		WildcardMember: stdlib.NewField(stdlib.StructKind(InstanceStruct)),
	}
	if err := r.writeClassMembers(table, className); err != nil {
		return err
	}

	if _, ok := r.std.Structs[className]; !ok {
		return fmt.Errorf("%w: reserved struct %s disappeared", ErrMalformedInput, className)
	}
	r.std.Structs[className] = table

	r.logger.Debug("synthesized struct", "class", className, "members", len(table))
	return nil
}

// writeClassMembers fills table from className and then each superclass in turn.
// A name already in table belongs to a subclass and is not replaced.
func (r *generation) writeClassMembers(table map[string]stdlib.Field, className string) error {
	visited := map[string]bool{}

	for name := className; name != apidump.RootSuperclass; {
		if visited[name] {
			return fmt.Errorf("%w: superclass cycle through %s", ErrMalformedInput, name)
		}
		visited[name] = true

		class, ok := r.classes[name]
		if !ok {
			return fmt.Errorf("%w: class %s not found", ErrMalformedInput, name)
		}

		own, err := r.classMembers(class)
		if err != nil {
			return err
		}
		for member, field := range own {
			if _, shadowed := table[member]; !shadowed {
				table[member] = field
			}
		}

		name = class.Superclass
	}
	return nil
}

// classMembers classifies the members declared by class itself. A later member
// replaces an earlier one of the same name.
func (r *generation) classMembers(class *apidump.Class) (map[string]stdlib.Field, error) {
	own := make(map[string]stdlib.Field, len(class.Members))

	for i := range class.Members {
		member := &class.Members[i]

		if member.Type == apidump.MemberUnknown {
			if r.strict {
				return nil, fmt.Errorf("%w for %s: %s %q", ErrUnknownMember, class.Name, member.RawType, member.Name)
			}
			r.logger.Debug("skipping unknown member", "class", class.Name, "member", member.Name, "type", member.RawType)
			continue
		}

		field, ok, err := r.classifyMember(member)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if member.Tags.Contains(apidump.TagDeprecated) {
			field.Deprecated = &stdlib.Deprecated{
				Message: deprecatedMessage,
				Replace: []string{},
			}
		}
		own[member.Name] = field
	}
	return own, nil
}

// classifyMember maps a member to its field. ok is false when the member is not
// exposed to ordinary scripts.
func (r *generation) classifyMember(member *apidump.Member) (stdlib.Field, bool, error) {
	switch member.Type {
	case apidump.MemberCallback:
		return stdlib.NewField(stdlib.PropertyKind(stdlib.OverrideFields)), true, nil

	case apidump.MemberEvent:
		return stdlib.NewField(stdlib.StructKind("Event")), true, nil

	case apidump.MemberFunction:
		args := make([]stdlib.Argument, len(member.Parameters))
		for i := range args {
			args[i] = stdlib.Argument{
				Type:     stdlib.AnyArgument(),
				Required: stdlib.NotRequired,
				Observes: stdlib.ObservesReadWrite,
			}
		}
		return stdlib.NewField(stdlib.FunctionKind(stdlib.FunctionBehavior{
			Arguments: args,
			Method:    true,
		})), true, nil

	case apidump.MemberProperty:
		return r.classifyProperty(member)
	}
	return stdlib.Field{}, false, nil
}

func (r *generation) classifyProperty(member *apidump.Member) (stdlib.Field, bool, error) {
	if !member.Security.IsDefault() {
		return stdlib.Field{}, false, nil
	}

	writability := stdlib.OverrideFields
	if member.Tags.Contains(apidump.TagReadOnly) {
		writability = stdlib.ReadOnly
	}
	property := stdlib.NewField(stdlib.PropertyKind(writability))

	switch member.ValueType.Category {
	case apidump.ValueClass:
		if err := r.writeClassStruct(member.ValueType.Name); err != nil {
			return stdlib.Field{}, false, err
		}
		return stdlib.NewField(stdlib.StructKind(member.ValueType.Name)), true, nil

	case apidump.ValueDataType:
		if member.ValueType.DataType().HasCustomMethods() {
			return stdlib.NewField(stdlib.AnyKind()), true, nil
		}
		return property, true, nil
	}
	return property, true, nil
}
