package stats

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pairwise/catalog"
)

// MutualInformation asks the engine for per-sample mutual information between
// columns a and b and returns the mean. The engine is mandatory.
func MutualInformation(ctx context.Context, in *Inputs, a, b catalog.Index) (float64, error) {
	if in == nil || in.Engine == nil {
		return 0, fmt.Errorf("mutual information: %w", ErrEngineRequired)
	}
	est, ok := in.Engine.(MutualInformationEstimator)
	if !ok {
		return 0, fmt.Errorf("mutual information: %T: %w", in.Engine, ErrEngineUnsupported)
	}
	samples := in.MISamples
	if samples <= 0 {
		samples = DefaultMISamples
	}

	values, err := est.MutualInformation(ctx, in, a, b, samples)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("mutual information: (%d,%d): %w", a, b, ErrEmptyEstimate)
	}
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values)), nil
}
