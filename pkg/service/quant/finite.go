package quant

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
)

func checkFinite(stage string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return goerr.Wrap(model.ErrNonFiniteValue, "non-finite intermediate value",
				goerr.V(model.StageKey, stage),
				goerr.V(model.ValueKey, v))
		}
	}
	return nil
}

// roundCurrency rounds to whole currency units and rejects values that do not fit int64
func roundCurrency(stage string, v float64) (int64, error) {
	r := math.Round(v)
	if err := checkFinite(stage, r); err != nil {
		return 0, err
	}
	if r >= math.MaxInt64 || r <= math.MinInt64 {
		return 0, goerr.Wrap(model.ErrNonFiniteValue, "currency amount overflows",
			goerr.V(model.StageKey, stage),
			goerr.V(model.ValueKey, v))
	}
	return int64(r), nil
}
