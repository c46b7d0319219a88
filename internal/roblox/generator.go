// Package roblox generates the Roblox standard-library descriptor from the engine's
// API dump.
//
// Generation seeds the handwritten roblox_base layer, binds the well-known globals
// (game, plugin, script, workspace) to class structs, projects every enum, constrains
// Instance.new and DataModel:GetService to the legal class names and records the
// class index used for reference lookup. Structs are flattened: each one carries the
// members of its whole superclass chain.
package roblox

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/robloxstd/pkg/apidump"
	"github.com/leapstack-labs/robloxstd/pkg/stdlib"
)

// HeaderFormat is the comment line written above the YAML document.
const HeaderFormat = "# This file was @generated by generate-roblox-std at %s\n"

// headerTimeLayout renders the local generation time in the header.
const headerTimeLayout = "2006-01-02 15:04:05.999999999 -07:00"

// DefaultVersion is recorded as last_selene_version when no version is configured.
const DefaultVersion = "dev"

// wellKnownGlobals binds fixed identifiers to class structs.
var wellKnownGlobals = []struct {
	global string
	class  string
}{
	{"game", "DataModel"},
	{"plugin", "Plugin"},
	{"script", "Script"},
	{"workspace", "Workspace"},
}

// Generator builds the Roblox descriptor.
type Generator struct {
	source  apidump.Source
	logger  *slog.Logger
	strict  bool
	version string
	now     func() time.Time
	layer   func() (*stdlib.StandardLibrary, error) // handwritten layer to seed from
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets where the API dump is loaded from. Defaults to the upstream URL.
func WithSource(src apidump.Source) Option {
	return func(g *Generator) { g.source = src }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithStrictMembers makes unknown member kinds abort generation instead of being
// skipped. Test binaries are strict by default.
func WithStrictMembers(strict bool) Option {
	return func(g *Generator) { g.strict = strict }
}

// WithVersion sets the generator version recorded in the descriptor.
func WithVersion(version string) Option {
	return func(g *Generator) { g.version = version }
}

// WithClock overrides the generation time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		source:  &apidump.HTTPSource{},
		logger:  slog.New(slog.DiscardHandler),
		strict:  testing.Testing(),
		version: DefaultVersion,
		now:     time.Now,
		layer:   stdlib.RobloxBase,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate loads the API dump and builds the descriptor. It returns the YAML bytes
// (header comment plus the generated layer) and the in-memory descriptor, which is
// additionally extended by its base library.
func (g *Generator) Generate(ctx context.Context) ([]byte, *stdlib.StandardLibrary, error) {
	g.logger.Debug("loading API dump")
	dump, err := g.source.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return g.GenerateFrom(dump)
}

// GenerateFrom builds the descriptor from an already loaded dump.
func (g *Generator) GenerateFrom(dump *apidump.Dump) ([]byte, *stdlib.StandardLibrary, error) {
	std, err := g.layer()
	if err != nil {
		return nil, nil, err
	}
	if std.Base == "" {
		return nil, nil, fmt.Errorf("%w: %s has no base library", ErrMalformedInput, stdlib.RobloxBaseName)
	}
	base, err := stdlib.FromName(std.Base)
	if err != nil {
		return nil, nil, err
	}

	run := newGeneration(g, dump, std)
	run.logger.Debug("building descriptor", "classes", len(dump.Classes), "enums", len(dump.Enums))
	if err := run.build(); err != nil {
		return nil, nil, err
	}

	now := g.now()
	updated := now.Unix()
	version := g.version
	std.LastUpdated = &updated
	std.LastSeleneVersion = &version

	var buf bytes.Buffer
	fmt.Fprintf(&buf, HeaderFormat, now.Local().Format(headerTimeLayout))
	if err := std.Encode(&buf); err != nil {
		return nil, nil, err
	}

	std.Extend(base)

	stats := StatsOf(std)
	run.logger.Info("generated standard library",
		"classes", len(dump.Classes),
		"enums", len(dump.Enums),
		"structs", stats.Structs,
		"globals", stats.Globals,
	)

	return buf.Bytes(), std, nil
}

// generation is the state of one run over a dump. Its logger tags every record
// with the run ID.
type generation struct {
	*Generator
	logger  *slog.Logger
	dump    *apidump.Dump
	std     *stdlib.StandardLibrary
	classes map[string]*apidump.Class
}

func newGeneration(g *Generator, dump *apidump.Dump, std *stdlib.StandardLibrary) *generation {
	classes := make(map[string]*apidump.Class, len(dump.Classes))
	for i := range dump.Classes {
		c := &dump.Classes[i]
		if _, ok := classes[c.Name]; !ok {
			classes[c.Name] = c
		}
	}
	return &generation{
		Generator: g,
		logger:    g.logger.With("run", uuid.NewString()),
		dump:      dump,
		std:       std,
		classes:   classes,
	}
}

// build runs the pipeline stages in order. GetService can only be constrained once
// the DataModel struct exists.
func (r *generation) build() error {
	for _, wk := range wellKnownGlobals {
		if err := r.writeClass(wk.global, wk.class); err != nil {
			return err
		}
	}

	r.writeEnums()
	r.writeInstanceNew()
	if err := r.writeGetService(); err != nil {
		return err
	}
	r.writeClassIndex()
	return nil
}

func (r *generation) writeClass(global, className string) error {
	if err := r.writeClassStruct(className); err != nil {
		return err
	}
	r.std.Globals[global] = stdlib.NewField(stdlib.StructKind(className))
	return nil
}
