// Package stdlib models the standard-library descriptor consumed by the Lua linter.
//
// A descriptor tells the linter which globals exist, how struct-typed values may be
// accessed, which arguments a function accepts and which members are deprecated.
// Descriptors are layered: a library names its base, and Extend folds the base's
// entries into the library without overriding anything the library already defines.
//
// # YAML
//
// Descriptors are stored as YAML. Globals are flat dotted paths:
//
//	globals:
//	  Instance.new:
//	    args:
//	      - type:
//	          - Part
//	          - Model
//	    must_use: true
//	  game:
//	    struct: DataModel
//
// Builtin libraries (lua51, luau, roblox_base) are embedded in the binary and loaded
// with Builtin or FromName.
package stdlib
