package rules

import "fmt"

// ConfigurationError reports a target declaration the policy layer refuses
// to forward. It is fatal to the enclosing build-description evaluation:
// nothing is declared downstream for the offending target and the error is
// not recovered locally.
type ConfigurationError struct {
	Target string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error in target %q: %s", e.Target, e.Reason)
}
