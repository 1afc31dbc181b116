package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
	"github.com/secmon-lab/riskquant/pkg/service/quant"
	"github.com/secmon-lab/riskquant/pkg/usecase"
)

var exampleProfile = model.OrganizationProfile{
	Employees:      50,
	Revenue:        5_000_000,
	InsuranceLimit: 1_000_000,
}

func newUseCases(t *testing.T, opts ...usecase.Option) *usecase.UseCases {
	t.Helper()
	uc, err := usecase.New(opts...)
	gt.NoError(t, err).Required()
	return uc
}

func TestAssess(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	engine, err := quant.New(nil)
	gt.NoError(t, err).Required()

	t.Run("matches the engine", func(t *testing.T) {
		controls := model.AllControlsEnabled()
		expected, err := engine.Assess(exampleProfile, controls)
		gt.NoError(t, err).Required()

		report, err := uc.Assessment.Assess(ctx, exampleProfile, controls)
		gt.NoError(t, err).Required()

		gt.Value(t, report.ID).NotEqual("")
		gt.Value(t, report.Profile).Equal(exampleProfile)
		gt.Value(t, report.Controls).Equal(controls)
		gt.Value(t, report.Warnings).Nil()
		gt.Value(t, report.Result).Equal(expected)
	})

	t.Run("out-of-range values are advisory", func(t *testing.T) {
		profile := model.OrganizationProfile{Employees: 0, Revenue: 5_000_000}
		report, err := uc.Assessment.Assess(ctx, profile, model.SecurityControlSet{})
		gt.NoError(t, err).Required()

		gt.Map(t, report.Warnings).HasKey(types.InputFieldEmployees)
		gt.Value(t, report.Warnings[types.InputFieldEmployees]).Equal("Employees must be between 1 and 1,000,000")
		gt.Value(t, report.Result).NotNil()
	})

	t.Run("non-finite input fails without a report", func(t *testing.T) {
		profile := model.OrganizationProfile{Employees: 10, Revenue: math.NaN()}
		report, err := uc.Assessment.Assess(ctx, profile, model.SecurityControlSet{})
		gt.Error(t, err).Is(model.ErrNonFiniteValue)
		gt.Value(t, report).Nil()
	})

	t.Run("each report has its own ID", func(t *testing.T) {
		r1, err := uc.Assessment.Assess(ctx, exampleProfile, model.SecurityControlSet{})
		gt.NoError(t, err).Required()
		r2, err := uc.Assessment.Assess(ctx, exampleProfile, model.SecurityControlSet{})
		gt.NoError(t, err).Required()
		gt.Value(t, r1.ID).NotEqual(r2.ID)
	})
}

func TestAssessCache(t *testing.T) {
	ctx := context.Background()

	t.Run("cached results are isolated from callers", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithCacheSize(8))
		controls := model.NewSecurityControlSet(types.ControlMFAEnabled)

		first, err := uc.Assessment.Assess(ctx, exampleProfile, controls)
		gt.NoError(t, err).Required()
		expected := first.Result.Clone()

		first.Result.TotalCost = -1
		first.Result.Scenarios[0].Percentiles.Median = -1
		first.Result.CostBreakdown[0].AdjustedCost = -1

		second, err := uc.Assessment.Assess(ctx, exampleProfile, controls)
		gt.NoError(t, err).Required()
		gt.Value(t, second.Result).Equal(expected)
		gt.Value(t, uc.Assessment.CachedAssessments()).Equal(1)
	})

	t.Run("cache size bounds entries", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithCacheSize(2))
		for employees := 1; employees <= 5; employees++ {
			profile := model.OrganizationProfile{Employees: employees, Revenue: 1_000_000}
			_, err := uc.Assessment.Assess(ctx, profile, model.SecurityControlSet{})
			gt.NoError(t, err).Required()
		}
		gt.Value(t, uc.Assessment.CachedAssessments()).Equal(2)
	})

	t.Run("disabled cache gives identical results", func(t *testing.T) {
		cached := newUseCases(t)
		uncached := newUseCases(t, usecase.WithCacheSize(0))

		for mask := 0; mask < 32; mask++ {
			var controls model.SecurityControlSet
			for i, id := range types.AllControls() {
				if mask&(1<<i) != 0 {
					controls = controls.With(id, true)
				}
			}

			a, err := cached.Assessment.Assess(ctx, exampleProfile, controls)
			gt.NoError(t, err).Required()
			b, err := uncached.Assessment.Assess(ctx, exampleProfile, controls)
			gt.NoError(t, err).Required()
			gt.Value(t, a.Result).Equal(b.Result)
		}
		gt.Value(t, uncached.Assessment.CachedAssessments()).Equal(0)
	})
}

func TestAssessBatch(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	entries := []model.BatchEntry{
		{Name: "small", Profile: model.OrganizationProfile{Employees: 10, Revenue: 1_000_000}},
		{Name: "example", Profile: exampleProfile, Controls: model.AllControlsEnabled()},
		{Name: "large", Profile: model.OrganizationProfile{Employees: 5_000, Revenue: 2_000_000_000}},
		{Name: "mid", Profile: model.OrganizationProfile{Employees: 250, Revenue: 40_000_000}, Controls: model.NewSecurityControlSet(types.ControlBackupsIsolated)},
	}

	t.Run("keeps input order", func(t *testing.T) {
		batch, err := uc.Assessment.AssessBatch(ctx, entries, 2)
		gt.NoError(t, err).Required()

		gt.Value(t, batch.ID).NotEqual("")
		gt.Array(t, batch.Reports).Length(len(entries))
		for i, entry := range entries {
			gt.Value(t, batch.Reports[i].Name).Equal(entry.Name)
			gt.Value(t, batch.Reports[i].Profile).Equal(entry.Profile)

			single, err := uc.Assessment.Assess(ctx, entry.Profile, entry.Controls)
			gt.NoError(t, err).Required()
			gt.Value(t, batch.Reports[i].Result).Equal(single.Result)
		}
	})

	t.Run("one failing entry fails the batch", func(t *testing.T) {
		broken := append([]model.BatchEntry{}, entries...)
		broken = append(broken, model.BatchEntry{
			Name:    "broken",
			Profile: model.OrganizationProfile{Employees: 10, Revenue: math.Inf(1)},
		})

		batch, err := uc.Assessment.AssessBatch(ctx, broken, 0)
		gt.Error(t, err).Is(model.ErrNonFiniteValue)
		gt.Value(t, batch).Nil()
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := uc.Assessment.AssessBatch(ctx, nil, 1)
		gt.Error(t, err).Is(usecase.ErrInvalidBatch)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := uc.Assessment.AssessBatch(canceled, entries, 1)
		gt.Bool(t, errors.Is(err, context.Canceled)).True()
	})
}

func TestValidate(t *testing.T) {
	uc := newUseCases(t)

	gt.Value(t, len(uc.Assessment.Validate(exampleProfile))).Equal(0)

	msgs := uc.Assessment.Validate(model.OrganizationProfile{
		Employees:      2_000_000,
		Revenue:        -1,
		InsuranceLimit: 5,
	})
	gt.Value(t, len(msgs)).Equal(2)
	gt.Value(t, msgs[types.InputFieldEmployees]).Equal("Employees must be between 1 and 1,000,000")
	gt.Value(t, msgs[types.InputFieldRevenue]).Equal("Annual revenue must be between 0 and 100,000,000,000")
}
