package config

import (
	"fmt"

	"dario.cat/mergo"
)

// ResolveTiming returns the account timing with every absent field taken
// from defaults. Values configured on the account win, including explicit
// zeros. The account itself is left unchanged; the result may share
// pointers with the account and defaults.
func (a *Account) ResolveTiming(defaults Timing) (Timing, error) {
	resolved := a.Timing
	if err := mergo.Merge(&resolved, defaults, mergo.WithoutDereference); err != nil {
		return Timing{}, fmt.Errorf("failed to resolve timing for account %q: %w", a.Remark, err)
	}
	return resolved, nil
}
