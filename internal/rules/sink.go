package rules

import "context"

// Kind identifies the primitive rule a spec is forwarded as.
type Kind string

const (
	// KindLibrary is a compiled library target.
	KindLibrary Kind = "library"
	// KindBinary is a linked executable target.
	KindBinary Kind = "binary"
	// KindTest is an executable test target.
	KindTest Kind = "test"
)

// Strictness selects which option policy a wrapper declares under.
type Strictness uint8

const (
	// NonPedantic applies the default catalog without the pedantic marker.
	NonPedantic Strictness = iota
	// Pedantic additionally appends the pedantic marker flag.
	Pedantic
)

func (s Strictness) String() string {
	if s == Pedantic {
		return "pedantic"
	}
	return "non-pedantic"
}

// Rule is a finished declaration: the primitive kind plus the forwarded,
// already-augmented spec.
type Rule struct {
	Kind Kind
	Spec TargetSpec
}

// RuleSink accepts finished rule declarations on behalf of the build
// engine. The engine's real registry sits behind this in production; tests
// substitute a recording implementation.
type RuleSink interface {
	Declare(ctx context.Context, rule Rule) error
}
