package stdlib

// ArgumentTypeKind discriminates the variants of ArgumentType.
type ArgumentTypeKind int

// Argument type kinds.
const (
	ArgAny ArgumentTypeKind = iota
	ArgBool
	ArgFunction
	ArgNil
	ArgNumber
	ArgString
	ArgTable
	ArgVararg
	ArgConstant
	ArgDisplay
)

var argumentTypeNames = map[ArgumentTypeKind]string{
	ArgAny:      "any",
	ArgBool:     "bool",
	ArgFunction: "function",
	ArgNil:      "nil",
	ArgNumber:   "number",
	ArgString:   "string",
	ArgTable:    "table",
	ArgVararg:   "...",
}

// ArgumentType constrains the value passed for an argument.
type ArgumentType struct {
	Kind      ArgumentTypeKind
	Constants []string // ArgConstant: the legal literal values
	Display   string   // ArgDisplay: free-form description
}

// AnyArgument accepts any value.
func AnyArgument() ArgumentType {
	return ArgumentType{Kind: ArgAny}
}

// ConstantArgument only accepts one of the given string literals.
func ConstantArgument(values []string) ArgumentType {
	return ArgumentType{Kind: ArgConstant, Constants: values}
}

// Required states whether an argument must be passed.
// The zero value is required with no custom message.
type Required struct {
	Optional bool
	Message  string
}

// NotRequired is an optional argument.
var NotRequired = Required{Optional: true}

// RequiredWithMessage is a required argument that reports msg when missing.
func RequiredWithMessage(msg string) Required {
	return Required{Message: msg}
}

// Observes states how a function observes a table argument.
type Observes int

// Observes values. ReadWrite is the zero value.
const (
	ObservesReadWrite Observes = iota
	ObservesRead
	ObservesWrite
)

func (o Observes) String() string {
	switch o {
	case ObservesRead:
		return "read"
	case ObservesWrite:
		return "write"
	default:
		return "read-write"
	}
}

// Argument is one positional argument of a function.
type Argument struct {
	Type     ArgumentType
	Required Required
	Observes Observes
}
