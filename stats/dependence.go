package stats

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pairwise/catalog"
)

// DependenceProbability is the share of samples in which columns a and b sit
// in the same view and that view splits the rows into more than one category.
// A single-category view carries no evidence of dependence; a column is always
// dependent on itself when it shares its own view.
// Complexity: O(samples · rows) for the category count.
func DependenceProbability(ctx context.Context, in *Inputs, a, b catalog.Index) (float64, error) {
	if in == nil || in.Ensemble == nil {
		return 0, fmt.Errorf("dependence probability: ensemble: %w", ErrMissingInput)
	}
	ens := in.Ensemble
	if err := ens.Check(); err != nil {
		return 0, fmt.Errorf("dependence probability: %w", err)
	}
	var dep float64
	for k, latent := range ens.Latents {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		va, err := latent.View(int(a))
		if err != nil {
			return 0, fmt.Errorf("dependence probability: sample %d: %w", k, err)
		}
		vb, err := latent.View(int(b))
		if err != nil {
			return 0, fmt.Errorf("dependence probability: sample %d: %w", k, err)
		}
		if va != vb {
			continue
		}
		if a == b || ens.Assignments[k].Categories(va) > 1 {
			dep++
		}
	}

	return dep / float64(ens.Len()), nil
}
