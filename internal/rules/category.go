package rules

import "context"

// Category classifies a test target for tag-based selection.
type Category string

const (
	// Unit marks fast, hermetic tests.
	Unit Category = "unit"
	// Integration marks tests exercising external collaborators.
	Integration Category = "integration"
)

func (c Category) valid() bool {
	return c == Unit || c == Integration
}

// ParseCategory converts a manifest-supplied label into a Category. The
// value is not validated here; Test rejects anything outside the taxonomy
// so that invalid labels fail the same way regardless of entry point.
func ParseCategory(s string) Category {
	return Category(s)
}

// Test validates the test's category, attaches it as a tag and forwards
// the declaration. An unknown category fails with *ConfigurationError
// before any sink call: a build description carrying an unclassifiable
// test must not be accepted.
func Test(ctx context.Context, sink RuleSink, category Category, spec TargetSpec) error {
	if !category.valid() {
		return &ConfigurationError{
			Target: spec.Name,
			Reason: "test category must be " + string(Unit) + " or " + string(Integration) + ", got " + string(category),
		}
	}
	fwd := spec.clone()
	fwd.Tags = append(fwd.Tags, string(category))
	return sink.Declare(ctx, Rule{Kind: KindTest, Spec: fwd})
}
