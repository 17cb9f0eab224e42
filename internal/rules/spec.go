// Package rules is the policy layer between target declarations and the
// build engine's primitive rule interface. It computes the effective
// compiler option list for each target from the default catalog, the
// target's exclusions and the declaring wrapper's strictness mode, and
// forwards the augmented specification to an injected RuleSink.
//
// The layer declares metadata only: it does not compile, schedule, or
// resolve dependencies. Those belong to the engine behind the sink.
package rules

// TargetSpec describes a single build target as supplied by the caller.
// Wrappers read NoCopts and Copts; every other field passes through to the
// sink untouched. Engine-specific attributes this layer has no opinion on
// go in Attrs and are never inspected.
type TargetSpec struct {
	Name       string
	Srcs       []string
	Hdrs       []string
	Deps       []string
	Data       []string
	Copts      []string
	NoCopts    []string
	LinkOpts   []string
	Tags       []string
	Visibility []string
	Attrs      map[string]any
}

// clone returns a derived spec with its own slice and map storage, so
// augmenting the forwarded spec never touches the caller's value.
func (s TargetSpec) clone() TargetSpec {
	out := s
	out.Srcs = cloneStrings(s.Srcs)
	out.Hdrs = cloneStrings(s.Hdrs)
	out.Deps = cloneStrings(s.Deps)
	out.Data = cloneStrings(s.Data)
	out.Copts = cloneStrings(s.Copts)
	out.NoCopts = cloneStrings(s.NoCopts)
	out.LinkOpts = cloneStrings(s.LinkOpts)
	out.Tags = cloneStrings(s.Tags)
	out.Visibility = cloneStrings(s.Visibility)
	if s.Attrs != nil {
		out.Attrs = make(map[string]any, len(s.Attrs))
		for k, v := range s.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
