package testutil

import "github.com/leapstack-labs/robloxstd/pkg/apidump"

// DumpBuilder assembles API dumps for tests.
type DumpBuilder struct {
	dump apidump.Dump
}

// NewDump returns an empty builder.
func NewDump() *DumpBuilder {
	return &DumpBuilder{}
}

// NewBaseDump returns a builder holding the classes every generation run needs:
// Instance, ServiceProvider, DataModel (with GetService), Plugin, Script and a
// Workspace service. None of them is creatable except through their own rules.
func NewBaseDump() *DumpBuilder {
	return NewDump().
		Class("Instance", apidump.RootSuperclass, []string{"NotCreatable"},
			Property("Name", nil),
			Property("ClassName", []string{"ReadOnly"}),
			Function("Destroy", 0),
		).
		Class("ServiceProvider", "Instance", []string{"NotCreatable"},
			Function("GetService", 1),
			Function("FindService", 1),
		).
		Class("DataModel", "ServiceProvider", []string{"NotCreatable"},
			Property("JobId", []string{"ReadOnly"}),
			Event("Close"),
		).
		Class("Plugin", "Instance", []string{"NotCreatable"}).
		Class("Script", "Instance", []string{"NotCreatable"},
			Property("Disabled", nil),
		).
		Class("Workspace", "Instance", []string{"NotCreatable", "Service"},
			Property("Gravity", nil),
		)
}

// Class appends a class.
func (b *DumpBuilder) Class(name, superclass string, tags []string, members ...apidump.Member) *DumpBuilder {
	b.dump.Classes = append(b.dump.Classes, apidump.Class{
		Name:       name,
		Superclass: superclass,
		Tags:       apidump.Tags(tags),
		Members:    members,
	})
	return b
}

// Enum appends an enum with the given item names.
func (b *DumpBuilder) Enum(name string, items ...string) *DumpBuilder {
	e := apidump.Enum{Name: name}
	for i, item := range items {
		e.Items = append(e.Items, apidump.EnumItem{Name: item, Value: i})
	}
	b.dump.Enums = append(b.dump.Enums, e)
	return b
}

// Build returns the assembled dump.
func (b *DumpBuilder) Build() *apidump.Dump {
	d := b.dump
	return &d
}

// Property returns a default-security property with a plain value type.
func Property(name string, tags []string) apidump.Member {
	return apidump.Member{
		Type:     apidump.MemberProperty,
		RawType:  "Property",
		Name:     name,
		Tags:     apidump.Tags(tags),
		Security: apidump.DefaultSecurity(),
	}
}

// ClassProperty returns a default-security property whose value is an instance of class.
func ClassProperty(name, class string, tags []string) apidump.Member {
	m := Property(name, tags)
	m.ValueType = apidump.ValueType{Category: apidump.ValueClass, Name: class}
	return m
}

// DataTypeProperty returns a default-security property of the given data type.
func DataTypeProperty(name, dataType string, tags []string) apidump.Member {
	m := Property(name, tags)
	m.ValueType = apidump.ValueType{Category: apidump.ValueDataType, Name: dataType}
	return m
}

// SecuredProperty returns a property restricted to the given security level.
func SecuredProperty(name, security string) apidump.Member {
	m := Property(name, nil)
	m.Security = apidump.PropertySecurity{Read: security, Write: security}
	return m
}

// Function returns a function member taking n parameters.
func Function(name string, n int, tags ...string) apidump.Member {
	return apidump.Member{
		Type:       apidump.MemberFunction,
		RawType:    "Function",
		Name:       name,
		Tags:       apidump.Tags(tags),
		Parameters: make([]apidump.Parameter, n),
	}
}

// Event returns an event member.
func Event(name string, tags ...string) apidump.Member {
	return apidump.Member{Type: apidump.MemberEvent, RawType: "Event", Name: name, Tags: apidump.Tags(tags)}
}

// Callback returns a callback member.
func Callback(name string, tags ...string) apidump.Member {
	return apidump.Member{Type: apidump.MemberCallback, RawType: "Callback", Name: name, Tags: apidump.Tags(tags)}
}

// Unknown returns a member of a kind the decoder does not recognize.
func Unknown(name, rawType string) apidump.Member {
	return apidump.Member{Type: apidump.MemberUnknown, RawType: rawType, Name: name}
}
