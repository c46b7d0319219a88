package apidump

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// MemberType discriminates the member variants.
type MemberType int

// Member variants.
const (
	MemberUnknown MemberType = iota
	MemberCallback
	MemberEvent
	MemberFunction
	MemberProperty
)

func (t MemberType) String() string {
	switch t {
	case MemberCallback:
		return "Callback"
	case MemberEvent:
		return "Event"
	case MemberFunction:
		return "Function"
	case MemberProperty:
		return "Property"
	default:
		return "Unknown"
	}
}

// Member is one member of a class. Parameters is set for functions; Security and
// ValueType for properties.
type Member struct {
	Type       MemberType
	RawType    string
	Name       string
	Tags       Tags
	Parameters []Parameter
	Security   PropertySecurity
	ValueType  ValueType
}

// Parameter is one function parameter.
type Parameter struct {
	Name string `json:"Name"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Member) UnmarshalJSON(data []byte) error {
	var head struct {
		MemberType string `json:"MemberType"`
		Name       string `json:"Name"`
		Tags       Tags   `json:"Tags"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	*m = Member{RawType: head.MemberType, Name: head.Name, Tags: head.Tags}

	switch head.MemberType {
	case "Callback":
		m.Type = MemberCallback
	case "Event":
		m.Type = MemberEvent
	case "Function":
		var fn struct {
			Parameters []Parameter `json:"Parameters"`
		}
		if err := json.Unmarshal(data, &fn); err != nil {
			return fmt.Errorf("function %s: %w", head.Name, err)
		}
		m.Type = MemberFunction
		m.Parameters = fn.Parameters
	case "Property":
		var prop struct {
			Security  PropertySecurity `json:"Security"`
			ValueType ValueType        `json:"ValueType"`
		}
		prop.Security = DefaultSecurity()
		if err := json.Unmarshal(data, &prop); err != nil {
			return fmt.Errorf("property %s: %w", head.Name, err)
		}
		m.Type = MemberProperty
		m.Security = prop.Security
		m.ValueType = prop.ValueType
	default:
		m.Type = MemberUnknown
	}
	return nil
}

// SecurityNone is the unrestricted security level.
const SecurityNone = "None"

// PropertySecurity is the read and write security of a property.
type PropertySecurity struct {
	Read  string
	Write string
}

// DefaultSecurity is the security of a property any script may use.
func DefaultSecurity() PropertySecurity {
	return PropertySecurity{Read: SecurityNone, Write: SecurityNone}
}

// IsDefault reports whether the property is accessible to ordinary scripts.
func (s PropertySecurity) IsDefault() bool {
	return s == DefaultSecurity()
}

// UnmarshalJSON accepts the object form {"Read": ..., "Write": ...} and the older
// plain string form, which applies to both.
func (s *PropertySecurity) UnmarshalJSON(data []byte) error {
	var level string
	if err := json.Unmarshal(data, &level); err == nil {
		*s = PropertySecurity{Read: level, Write: level}
		return nil
	}

	var obj struct {
		Read  string `json:"Read"`
		Write string `json:"Write"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*s = PropertySecurity(obj)
	return nil
}

// ValueCategory discriminates value types.
type ValueCategory int

// Value categories. Everything that is neither a class nor a data type is plain.
const (
	ValuePlain ValueCategory = iota
	ValueClass
	ValueDataType
)

// ValueType is the type of a property's value.
type ValueType struct {
	Category ValueCategory
	Name     string
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *ValueType) UnmarshalJSON(data []byte) error {
	var raw struct {
		Category string `json:"Category"`
		Name     string `json:"Name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Name = raw.Name
	switch raw.Category {
	case "Class":
		v.Category = ValueClass
	case "DataType":
		v.Category = ValueDataType
	default:
		v.Category = ValuePlain
	}
	return nil
}

// DataType returns the data type descriptor of a ValueDataType value.
func (v ValueType) DataType() DataType {
	return DataType{Name: v.Name}
}

// DataType is an engine data type such as Vector3 or Content.
type DataType struct {
	Name string
}

// stringDataTypes are data types that are strings with extra validation. The set
// deliberately goes beyond Content to every string-backed data type.
var stringDataTypes = map[string]bool{
	"Content":         true,
	"ProtectedString": true,
	"BinaryString":    true,
	"SharedString":    true,
}

// HasCustomMethods reports whether values of the type carry methods and operators
// of their own. The linter has no model for those, so such properties stay opaque.
func (d DataType) HasCustomMethods() bool {
	return !stringDataTypes[d.Name]
}
