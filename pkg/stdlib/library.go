package stdlib

// RobloxClass is one entry of the class index used for reference lookup.
type RobloxClass struct {
	Superclass string   `yaml:"superclass"`
	Events     []string `yaml:"events"`
	Properties []string `yaml:"properties"`
}

// StandardLibrary is a descriptor layer.
type StandardLibrary struct {
	Base              string                      `yaml:"base,omitempty"`
	Name              string                      `yaml:"name,omitempty"`
	LuaVersions       []string                    `yaml:"lua_versions,omitempty"`
	Globals           map[string]Field            `yaml:"globals,omitempty"`
	Structs           map[string]map[string]Field `yaml:"structs,omitempty"`
	RobloxClasses     map[string]RobloxClass      `yaml:"roblox_classes,omitempty"`
	LastUpdated       *int64                      `yaml:"last_updated,omitempty"`
	LastSeleneVersion *string                     `yaml:"last_selene_version,omitempty"`
}

// New returns an empty library with initialized tables.
func New() *StandardLibrary {
	lib := &StandardLibrary{}
	lib.ensureTables()
	return lib
}

func (s *StandardLibrary) ensureTables() {
	if s.Globals == nil {
		s.Globals = make(map[string]Field)
	}
	if s.Structs == nil {
		s.Structs = make(map[string]map[string]Field)
	}
	if s.RobloxClasses == nil {
		s.RobloxClasses = make(map[string]RobloxClass)
	}
}

// Extend folds parent into s. Entries already defined by s win. Any global or struct
// member of kind Removed is dropped once the merge is done.
func (s *StandardLibrary) Extend(parent *StandardLibrary) {
	s.ensureTables()
	if parent == nil {
		return
	}

	for name, field := range parent.Globals {
		if _, ok := s.Globals[name]; !ok {
			s.Globals[name] = field
		}
	}

	for name, members := range parent.Structs {
		if _, ok := s.Structs[name]; !ok {
			s.Structs[name] = members
		}
	}

	for name, class := range parent.RobloxClasses {
		if _, ok := s.RobloxClasses[name]; !ok {
			s.RobloxClasses[name] = class
		}
	}

	if len(s.LuaVersions) == 0 {
		s.LuaVersions = append([]string(nil), parent.LuaVersions...)
	}

	for name, field := range s.Globals {
		if field.Kind.Type == KindRemoved {
			delete(s.Globals, name)
		}
	}
	for _, members := range s.Structs {
		for name, field := range members {
			if field.Kind.Type == KindRemoved {
				delete(members, name)
			}
		}
	}
}
