package plan

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/swift-nav/rules-swiftnav-test/internal/rules"
)

// RecordingSink collects declared rules in declaration order. It stands in
// for the engine's rule registry in tests and dry runs.
type RecordingSink struct {
	mu    sync.Mutex
	rules []rules.Rule
}

func (s *RecordingSink) Declare(_ context.Context, rule rules.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule)
	return nil
}

// Rules returns the declarations recorded so far.
func (s *RecordingSink) Rules() []rules.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]rules.Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// RenderSink writes each declaration to w in an engine-neutral textual
// form as it arrives.
type RenderSink struct {
	W io.Writer
}

func (s RenderSink) Declare(_ context.Context, rule rules.Rule) error {
	return WriteRule(s.W, rule)
}

// WriteRule renders one declaration. Only populated attributes are
// printed, keeping the output stable for golden comparisons.
func WriteRule(w io.Writer, rule rules.Rule) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s(name = %q", rule.Kind, rule.Spec.Name)
	writeList(&b, "srcs", rule.Spec.Srcs)
	writeList(&b, "hdrs", rule.Spec.Hdrs)
	writeList(&b, "deps", rule.Spec.Deps)
	writeList(&b, "data", rule.Spec.Data)
	writeList(&b, "copts", rule.Spec.Copts)
	writeList(&b, "linkopts", rule.Spec.LinkOpts)
	writeList(&b, "tags", rule.Spec.Tags)
	writeList(&b, "visibility", rule.Spec.Visibility)
	b.WriteString(")\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, attr string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, ", %s = [", attr)
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%q", v)
	}
	b.WriteString("]")
}
