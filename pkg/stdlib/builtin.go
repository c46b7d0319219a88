package stdlib

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed builtin/*.yml
var builtinFS embed.FS

// ErrUnknownLibrary is returned when no builtin library has the requested name.
var ErrUnknownLibrary = errors.New("unknown standard library")

// RobloxBaseName is the handwritten layer the Roblox generator extends.
const RobloxBaseName = "roblox_base"

// BuiltinNames returns the names of all embedded libraries, sorted.
func BuiltinNames() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yml"))
	}
	sort.Strings(names)
	return names
}

// Builtin returns the embedded library layer with the given name, without its base.
func Builtin(name string) (*StandardLibrary, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLibrary, name)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("builtin %s: %w", name, err)
	}
	return lib, nil
}

// FromName returns the embedded library with the given name, extended by its whole
// base chain.
func FromName(name string) (*StandardLibrary, error) {
	return fromName(name, map[string]bool{})
}

func fromName(name string, seen map[string]bool) (*StandardLibrary, error) {
	if seen[name] {
		return nil, fmt.Errorf("base cycle through standard library %s", name)
	}
	seen[name] = true

	lib, err := Builtin(name)
	if err != nil {
		return nil, err
	}
	if lib.Base == "" {
		return lib, nil
	}

	base, err := fromName(lib.Base, seen)
	if err != nil {
		return nil, err
	}
	lib.Extend(base)
	return lib, nil
}

// RobloxBase returns the handwritten Roblox layer.
func RobloxBase() (*StandardLibrary, error) {
	return Builtin(RobloxBaseName)
}
