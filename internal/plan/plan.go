// Package plan drives every manifest target through its policy wrapper
// and forwards the finished declarations to a sink.
package plan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/swift-nav/rules-swiftnav-test/internal/manifest"
	"github.com/swift-nav/rules-swiftnav-test/internal/rules"
)

type entry struct {
	declare func(context.Context, rules.RuleSink) error
}

// Build evaluates the manifest against the policy layer and declares every
// target into sink in manifest order. Targets are independent, so
// resolution fans out over jobs workers; the declarations are forwarded
// sequentially afterwards to keep sink order deterministic. A
// ConfigurationError from any target cancels the remaining work and fails
// the whole evaluation.
func Build(ctx context.Context, m *manifest.Manifest, sink rules.RuleSink, jobs int) error {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	entries := collect(m)
	resolved := make([]*RecordingSink, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			rec := &RecordingSink{}
			if err := e.declare(gctx, rec); err != nil {
				return err
			}
			resolved[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, rec := range resolved {
		for _, rule := range rec.Rules() {
			if err := sink.Declare(ctx, rule); err != nil {
				return err
			}
		}
	}
	return nil
}

func collect(m *manifest.Manifest) []entry {
	var entries []entry
	add := func(targets []manifest.Target, declare func(context.Context, rules.RuleSink, rules.TargetSpec) error) {
		for _, t := range targets {
			spec := toSpec(t)
			entries = append(entries, entry{
				declare: func(ctx context.Context, sink rules.RuleSink) error {
					return declare(ctx, sink, spec)
				},
			})
		}
	}

	add(m.Libraries, rules.Library)
	add(m.ToolLibraries, rules.ToolLibrary)
	add(m.Binaries, rules.Binary)
	add(m.ToolBinaries, rules.ToolBinary)
	add(m.TestLibraries, rules.TestLibrary)
	for _, t := range m.Tests {
		spec := toSpec(t)
		category := rules.ParseCategory(t.Category)
		entries = append(entries, entry{
			declare: func(ctx context.Context, sink rules.RuleSink) error {
				return rules.Test(ctx, sink, category, spec)
			},
		})
	}
	return entries
}

func toSpec(t manifest.Target) rules.TargetSpec {
	return rules.TargetSpec{
		Name:       t.Name,
		Srcs:       t.Srcs,
		Hdrs:       t.Hdrs,
		Deps:       t.Deps,
		Data:       t.Data,
		Copts:      t.Copts,
		NoCopts:    t.NoCopts,
		LinkOpts:   t.LinkOpts,
		Tags:       t.Tags,
		Visibility: t.Visibility,
	}
}
