// Package copts defines the organizational default compiler option policy
// and the resolver that computes per-target effective option lists.
//
// The catalog is fixed at build time and never mutated at runtime; targets
// opt out of individual entries through per-target exclusion lists, and the
// strictness mode of the declaring wrapper decides whether the pedantic
// marker is appended. Resolution is pure: same inputs, same output, no IO.
package copts

// PedanticFlag is the single marker appended when a target is declared
// under the pedantic strictness mode. It is always the last entry the
// resolver contributes.
const PedanticFlag = "-pedantic"

// defaultCatalog is the ordered default diagnostic flag list. Order is
// load-bearing: downstream engines apply repeated flags last-wins, so
// entries here must stay in their reviewed order.
var defaultCatalog = []string{
	"-Wall",
	"-Wextra",
	"-Werror",
	"-Wcast-align",
	"-Wchar-subscripts",
	"-Wcomment",
	"-Wdisabled-optimization",
	"-Wfloat-equal",
	"-Wformat",
	"-Wformat-security",
	"-Wimplicit-fallthrough",
	"-Winit-self",
	"-Wmissing-braces",
	"-Wpointer-arith",
	"-Wredundant-decls",
	"-Wshadow",
	"-Wswitch-default",
	"-Wundef",
	"-Wuninitialized",
	"-Wunreachable-code",
}

// Catalog returns a copy of the default option catalog. Callers receive a
// fresh slice each time so the policy itself cannot be mutated.
func Catalog() []string {
	out := make([]string, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// Resolve filters catalog entries through the exclusion list and appends
// the pedantic marker when requested. Relative order of surviving entries
// is preserved. Exclusion entries absent from the catalog are ignored:
// the catalog can drop a flag without every target's exclusion list
// needing a matching edit.
func Resolve(catalog, exclusions []string, pedantic bool) []string {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, e := range exclusions {
		excluded[e] = struct{}{}
	}
	out := make([]string, 0, len(catalog)+1)
	for _, opt := range catalog {
		if _, ok := excluded[opt]; ok {
			continue
		}
		out = append(out, opt)
	}
	if pedantic {
		out = append(out, PedanticFlag)
	}
	return out
}

// Effective resolves the default catalog against a target's exclusions.
func Effective(exclusions []string, pedantic bool) []string {
	return Resolve(defaultCatalog, exclusions, pedantic)
}
