package roblox

import (
	"github.com/leapstack-labs/robloxstd/pkg/apidump"
	"github.com/leapstack-labs/robloxstd/pkg/stdlib"
)

// writeClassIndex records each class's superclass together with the events and
// properties it declares itself, in dump order.
func (r *generation) writeClassIndex() {
	for i := range r.dump.Classes {
		class := &r.dump.Classes[i]

		events := []string{}
		properties := []string{}
		for _, member := range class.Members {
			switch member.Type {
			case apidump.MemberEvent:
				events = append(events, member.Name)
			case apidump.MemberProperty:
				properties = append(properties, member.Name)
			}
		}

		r.std.RobloxClasses[class.Name] = stdlib.RobloxClass{
			Superclass: class.Superclass,
			Events:     events,
			Properties: properties,
		}
	}
}
