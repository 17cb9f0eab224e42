package rules

import (
	"context"

	"github.com/swift-nav/rules-swiftnav-test/internal/copts"
)

// Library declares a production library under the pedantic policy.
func Library(ctx context.Context, sink RuleSink, spec TargetSpec) error {
	return declare(ctx, sink, KindLibrary, Pedantic, spec)
}

// ToolLibrary declares an internal tool library under the relaxed policy.
func ToolLibrary(ctx context.Context, sink RuleSink, spec TargetSpec) error {
	return declare(ctx, sink, KindLibrary, NonPedantic, spec)
}

// Binary declares a production binary under the pedantic policy.
func Binary(ctx context.Context, sink RuleSink, spec TargetSpec) error {
	return declare(ctx, sink, KindBinary, Pedantic, spec)
}

// ToolBinary declares an internal tool binary under the relaxed policy.
func ToolBinary(ctx context.Context, sink RuleSink, spec TargetSpec) error {
	return declare(ctx, sink, KindBinary, NonPedantic, spec)
}

// TestLibrary declares a test-scoped library. No options are injected:
// test libraries inherit only what the caller specifies.
func TestLibrary(ctx context.Context, sink RuleSink, spec TargetSpec) error {
	return sink.Declare(ctx, Rule{Kind: KindLibrary, Spec: spec.clone()})
}

// declare augments the caller's spec with the resolved option list and
// forwards it. Caller-supplied copts come first, the computed defaults
// after: with the usual last-wins flag semantics downstream, the computed
// defaults take precedence unless the engine defines otherwise.
func declare(ctx context.Context, sink RuleSink, kind Kind, mode Strictness, spec TargetSpec) error {
	fwd := spec.clone()
	effective := copts.Effective(fwd.NoCopts, mode == Pedantic)
	fwd.Copts = append(fwd.Copts, effective...)
	return sink.Declare(ctx, Rule{Kind: kind, Spec: fwd})
}
