package roblox

import "errors"

var (
	// ErrMalformedInput reports a dump that breaks the generator's assumptions, such
	// as a missing superclass, a superclass cycle or a DataModel without GetService.
	ErrMalformedInput = errors.New("malformed API dump")

	// ErrUnknownMember reports a member kind the generator cannot classify. It is only
	// returned in strict mode.
	ErrUnknownMember = errors.New("unknown member found in Roblox API dump")
)
