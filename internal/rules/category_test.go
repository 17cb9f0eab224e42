package rules

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestTest_AttachesCategoryTag(t *testing.T) {
	sink := &captureSink{}
	spec := TargetSpec{
		Name: "nav_test",
		Srcs: []string{"nav_test.cc"},
		Tags: []string{"manual"},
	}

	if err := Test(context.Background(), sink, Unit, spec); err != nil {
		t.Fatalf("Test failed: %v", err)
	}

	rule := sink.rules[0]
	if rule.Kind != KindTest {
		t.Errorf("expected kind %q, got %q", KindTest, rule.Kind)
	}
	want := []string{"manual", "unit"}
	if !reflect.DeepEqual(rule.Spec.Tags, want) {
		t.Errorf("expected tags %v, got %v", want, rule.Spec.Tags)
	}
	// Existing tags on the caller's spec stay untouched.
	if !reflect.DeepEqual(spec.Tags, []string{"manual"}) {
		t.Errorf("caller tags mutated: %v", spec.Tags)
	}
}

func TestTest_IntegrationTag(t *testing.T) {
	sink := &captureSink{}
	if err := Test(context.Background(), sink, Integration, TargetSpec{Name: "e2e"}); err != nil {
		t.Fatalf("Test failed: %v", err)
	}
	tags := sink.rules[0].Spec.Tags
	if !reflect.DeepEqual(tags, []string{"integration"}) {
		t.Errorf("expected [integration], got %v", tags)
	}
}

func TestTest_RejectsUnknownCategory(t *testing.T) {
	for _, bogus := range []string{"bogus", "", "Unit", "UNIT", "unit "} {
		t.Run("category="+bogus, func(t *testing.T) {
			sink := &captureSink{}
			err := Test(context.Background(), sink, ParseCategory(bogus), TargetSpec{Name: "bar"})

			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cfgErr.Target != "bar" {
				t.Errorf("expected target %q in error, got %q", "bar", cfgErr.Target)
			}
			if len(sink.rules) != 0 {
				t.Errorf("expected no forwarding on rejection, got %d rules", len(sink.rules))
			}
		})
	}
}

func TestTest_DoesNotInjectOptions(t *testing.T) {
	sink := &captureSink{}
	spec := TargetSpec{Name: "nav_test", Copts: []string{"-O0"}}
	if err := Test(context.Background(), sink, Unit, spec); err != nil {
		t.Fatalf("Test failed: %v", err)
	}
	if !reflect.DeepEqual(sink.rules[0].Spec.Copts, []string{"-O0"}) {
		t.Errorf("expected caller copts untouched, got %v", sink.rules[0].Spec.Copts)
	}
}
