package roblox

import "github.com/leapstack-labs/robloxstd/pkg/stdlib"

// Stats summarizes a descriptor.
type Stats struct {
	Globals       int `json:"globals"`
	Structs       int `json:"structs"`
	StructMembers int `json:"struct_members"`
	Classes       int `json:"classes"`
	Deprecated    int `json:"deprecated"`
}

// StatsOf counts the entries of std.
func StatsOf(std *stdlib.StandardLibrary) Stats {
	s := Stats{
		Globals: len(std.Globals),
		Structs: len(std.Structs),
		Classes: len(std.RobloxClasses),
	}
	for _, field := range std.Globals {
		if field.Deprecated != nil {
			s.Deprecated++
		}
	}
	for _, members := range std.Structs {
		s.StructMembers += len(members)
		for _, field := range members {
			if field.Deprecated != nil {
				s.Deprecated++
			}
		}
	}
	return s
}
