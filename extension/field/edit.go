// edit.go applies one key change to a profile field. The CLI and the MCP
// tool share it so both report the same diff.

package field

import (
	"github.com/jpl-au/domainguard/extension"
	"github.com/jpl-au/domainguard/internal/config"
	"github.com/jpl-au/domainguard/internal/diff"
	"github.com/jpl-au/domainguard/internal/domain"
	"github.com/jpl-au/domainguard/internal/profile"
)

// Change describes a saved edit.
type Change struct {
	Field string       `json:"field"`
	Key   string       `json:"key"`
	Value string       `json:"value"`
	Diff  *diff.Result `json:"diff,omitempty"`
}

// apply sets key on the named field and saves the config. List keys carry a
// diff of the old and new patterns.
func apply(ctx extension.Context, name, key, value string) (Change, error) {
	ch := Change{Field: name, Key: key}
	err := ctx.Update(func(cfg *config.Config) error {
		pf, err := cfg.Field(name)
		if err != nil {
			return err
		}
		before, _ := pf.Get(key)
		if err := pf.Set(key, value); err != nil {
			return err
		}
		ch.Value, _ = pf.Get(key)
		if key == profile.KeyAllowedDomains || key == profile.KeyDisallowedDomains {
			r := diff.Lists(domain.NormalizePatternList(before), domain.NormalizePatternList(ch.Value), key)
			ch.Diff = &r
		}
		return nil
	})
	return ch, err
}
