package roblox

import (
	"fmt"

	"github.com/leapstack-labs/robloxstd/pkg/apidump"
	"github.com/leapstack-labs/robloxstd/pkg/stdlib"
)

// CreatableClasses returns, in dump order, every class Instance.new accepts.
func CreatableClasses(classes []apidump.Class) []string {
	names := make([]string, 0, len(classes))
	for i := range classes {
		if !classes[i].Tags.Contains(apidump.TagNotCreatable) {
			names = append(names, classes[i].Name)
		}
	}
	return names
}

// ServiceClasses returns, in dump order, every class DataModel:GetService accepts.
func ServiceClasses(classes []apidump.Class) []string {
	names := make([]string, 0)
	for i := range classes {
		if classes[i].Tags.Contains(apidump.TagService) {
			names = append(names, classes[i].Name)
		}
	}
	return names
}

// writeInstanceNew replaces Instance.new with a constructor taking a creatable
// class name. The optional parent argument is not modeled, which is why the result
// must be used.
func (r *generation) writeInstanceNew() {
	r.std.Globals["Instance.new"] = stdlib.NewField(stdlib.FunctionKind(stdlib.FunctionBehavior{
		Arguments: []stdlib.Argument{{
			Type:     stdlib.ConstantArgument(CreatableClasses(r.dump.Classes)),
			Required: stdlib.Required{},
			Observes: stdlib.ObservesReadWrite,
		}},
		Method:  false,
		MustUse: true,
	}))
}

// writeGetService overwrites the GetService entry of the DataModel struct. Any other
// metadata on the inherited entry, deprecation included, is discarded.
func (r *generation) writeGetService() error {
	dataModel, ok := r.std.Structs["DataModel"]
	if !ok {
		return fmt.Errorf("%w: DataModel struct was not generated", ErrMalformedInput)
	}
	if _, ok := dataModel["GetService"]; !ok {
		return fmt.Errorf("%w: DataModel has no GetService member", ErrMalformedInput)
	}

	dataModel["GetService"] = stdlib.NewField(stdlib.FunctionKind(stdlib.FunctionBehavior{
		Arguments: []stdlib.Argument{{
			Type:     stdlib.ConstantArgument(ServiceClasses(r.dump.Classes)),
			Required: stdlib.Required{},
			Observes: stdlib.ObservesReadWrite,
		}},
		Method:  true,
		MustUse: true,
	}))
	return nil
}
