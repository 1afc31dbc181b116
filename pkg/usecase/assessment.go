package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/domain/model/config"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
	"github.com/secmon-lab/riskquant/pkg/service/quant"
	"github.com/secmon-lab/riskquant/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

type assessmentKey struct {
	profile  model.OrganizationProfile
	controls model.SecurityControlSet
}

// AssessmentUseCase runs the engine with advisory validation, memoization and batch fan-out
type AssessmentUseCase struct {
	engine  *quant.Engine
	cache   *lru.Cache[assessmentKey, *model.RiskAssessmentResult]
	metrics *metrics
}

func newAssessmentUseCase(engine *quant.Engine, cacheSize int, m *metrics) (*AssessmentUseCase, error) {
	uc := &AssessmentUseCase{
		engine:  engine,
		metrics: m,
	}

	if cacheSize > 0 {
		cache, err := lru.New[assessmentKey, *model.RiskAssessmentResult](cacheSize)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create assessment cache", goerr.V("size", cacheSize))
		}
		uc.cache = cache
	}

	return uc, nil
}

// Catalog returns the catalog assessments are computed against
func (uc *AssessmentUseCase) Catalog() *config.Catalog {
	return uc.engine.Catalog()
}

// Validate runs the input validator over every bounds-checked field of profile and returns
// the messages of the rejected fields. An empty map means every field is in range.
func (uc *AssessmentUseCase) Validate(profile model.OrganizationProfile) map[types.InputField]string {
	validator := model.NewInputValidator(uc.engine.Catalog().Ranges)
	validator.CheckProfile(profile)
	return validator.Errors()
}

// Assess evaluates one profile. Out-of-range fields are reported as warnings and do not stop
// the assessment. A computation failure returns no report.
func (uc *AssessmentUseCase) Assess(ctx context.Context, profile model.OrganizationProfile, controls model.SecurityControlSet) (*model.AssessmentReport, error) {
	logger := logging.From(ctx)

	warnings := uc.Validate(profile)
	if len(warnings) > 0 {
		logger.Warn("profile has out-of-range values", "warnings", warnings)
	}

	result, err := uc.evaluate(profile, controls)
	if err != nil {
		uc.metrics.assessments.WithLabelValues("failure").Inc()
		return nil, goerr.Wrap(err, "failed to assess risk",
			goerr.V("employees", profile.Employees),
			goerr.V("revenue", profile.Revenue),
			goerr.V("controls", controls.EnabledControls()),
		)
	}
	uc.metrics.assessments.WithLabelValues("success").Inc()
	uc.metrics.totalCost.Observe(float64(result.TotalCost))

	report := &model.AssessmentReport{
		ID:         uuid.NewString(),
		AssessedAt: time.Now().UTC(),
		Profile:    profile,
		Controls:   controls,
		Result:     result,
	}
	if len(warnings) > 0 {
		report.Warnings = warnings
	}

	logger.Debug("risk assessed",
		"report_id", report.ID,
		"total_cost", result.TotalCost,
		"security_score", result.SecurityScore,
		"risk_reduction", result.RiskReduction,
		"uninsured_exposure", result.UninsuredExposure,
	)

	return report, nil
}

// AssessBatch evaluates entries concurrently with at most concurrency workers (unbounded when
// zero or less). Reports keep the input order. Any failing entry fails the whole batch.
func (uc *AssessmentUseCase) AssessBatch(ctx context.Context, entries []model.BatchEntry, concurrency int) (*model.BatchReport, error) {
	if len(entries) == 0 {
		return nil, goerr.Wrap(ErrInvalidBatch, "batch has no entries")
	}

	batch := &model.BatchReport{
		ID:      uuid.NewString(),
		Reports: make([]*model.AssessmentReport, len(entries)),
	}
	ctx = logging.With(ctx, logging.From(ctx).With("batch_id", batch.ID))

	eg, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}

	for i, entry := range entries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			report, err := uc.Assess(ctx, entry.Profile, entry.Controls)
			if err != nil {
				return goerr.Wrap(err, "failed to assess batch entry",
					goerr.V(EntryKey, entry.Name),
					goerr.V(IndexKey, i),
				)
			}
			report.Name = entry.Name
			batch.Reports[i] = report
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("batch assessed", "entries", len(entries))
	return batch, nil
}

func (uc *AssessmentUseCase) evaluate(profile model.OrganizationProfile, controls model.SecurityControlSet) (*model.RiskAssessmentResult, error) {
	key := assessmentKey{profile: profile, controls: controls}

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(key); ok {
			uc.metrics.cacheLookups.WithLabelValues("hit").Inc()
			return cached.Clone(), nil
		}
		uc.metrics.cacheLookups.WithLabelValues("miss").Inc()
	}

	result, err := uc.engine.Assess(profile, controls)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Add(key, result.Clone())
	}
	return result, nil
}
