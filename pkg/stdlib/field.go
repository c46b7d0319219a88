package stdlib

// FieldKindType discriminates the variants of FieldKind.
type FieldKindType int

// Field kinds.
const (
	KindAny FieldKindType = iota
	KindFunction
	KindProperty
	KindStruct
	KindRemoved
)

// String returns the YAML key used for the kind.
func (k FieldKindType) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindFunction:
		return "function"
	case KindProperty:
		return "property"
	case KindStruct:
		return "struct"
	case KindRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// PropertyWritability states how a property may be assigned to.
type PropertyWritability string

// Property writabilities.
const (
	ReadOnly       PropertyWritability = "read-only"
	NewFields      PropertyWritability = "new-fields"
	OverrideFields PropertyWritability = "override-fields"
	FullWrite      PropertyWritability = "full-write"
)

func (w PropertyWritability) valid() bool {
	switch w {
	case ReadOnly, NewFields, OverrideFields, FullWrite:
		return true
	}
	return false
}

// FieldKind is the usage contract of one identifier or struct member.
// Only the fields belonging to Type are meaningful.
type FieldKind struct {
	Type        FieldKindType
	Struct      string              // KindStruct
	Writability PropertyWritability // KindProperty
	Function    *FunctionBehavior   // KindFunction
}

// AnyKind is an unconstrained value.
func AnyKind() FieldKind {
	return FieldKind{Type: KindAny}
}

// StructKind refers to an instance of the named struct.
func StructKind(name string) FieldKind {
	return FieldKind{Type: KindStruct, Struct: name}
}

// PropertyKind is a plain property with the given writability.
func PropertyKind(w PropertyWritability) FieldKind {
	return FieldKind{Type: KindProperty, Writability: w}
}

// FunctionKind is a callable with the given behavior.
func FunctionKind(b FunctionBehavior) FieldKind {
	return FieldKind{Type: KindFunction, Function: &b}
}

// RemovedKind deletes an entry inherited from a base library.
func RemovedKind() FieldKind {
	return FieldKind{Type: KindRemoved}
}

// FunctionBehavior describes a function's call contract.
type FunctionBehavior struct {
	Arguments []Argument
	Method    bool
	MustUse   bool
}

// Deprecated marks a field as deprecated. Replace is always written, as an empty
// sequence when there is no suggested replacement.
type Deprecated struct {
	Message string   `yaml:"message"`
	Replace []string `yaml:"replace"`
}

// Field is one descriptor entry.
type Field struct {
	Kind       FieldKind
	Deprecated *Deprecated
}

// NewField returns a non-deprecated field of the given kind.
func NewField(kind FieldKind) Field {
	return Field{Kind: kind}
}
