package roblox

import "github.com/leapstack-labs/robloxstd/pkg/stdlib"

// writeEnums binds Enum.<Name>.GetEnumItems and Enum.<Name>.<Item> for every enum.
func (r *generation) writeEnums() {
	for _, enum := range r.dump.Enums {
		r.std.Globals["Enum."+enum.Name+".GetEnumItems"] = stdlib.NewField(stdlib.FunctionKind(stdlib.FunctionBehavior{
			Arguments: []stdlib.Argument{},
			Method:    true,
			MustUse:   true,
		}))

		for _, item := range enum.Items {
			r.std.Globals["Enum."+enum.Name+"."+item.Name] = stdlib.NewField(stdlib.StructKind("EnumItem"))
		}
	}
}
