package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
)

func TestSecurityControlSet(t *testing.T) {
	t.Run("empty set has nothing enabled", func(t *testing.T) {
		var s model.SecurityControlSet
		gt.Value(t, s.EnabledCount()).Equal(0)
		for _, id := range types.AllControls() {
			gt.Bool(t, s.Enabled(id)).False()
		}
	})

	t.Run("all controls enabled", func(t *testing.T) {
		s := model.AllControlsEnabled()
		gt.Value(t, s.EnabledCount()).Equal(5)
		gt.Value(t, s.EnabledControls()).Equal(types.AllControls())
	})

	t.Run("With switches a single control and leaves the receiver untouched", func(t *testing.T) {
		var base model.SecurityControlSet
		on := base.With(types.ControlVendorReviews, true)

		gt.Bool(t, on.VendorReviews).True()
		gt.Value(t, on.EnabledCount()).Equal(1)
		gt.Bool(t, base.VendorReviews).False()

		off := on.With(types.ControlVendorReviews, false)
		gt.Value(t, off).Equal(base)
	})

	t.Run("NewSecurityControlSet ignores unknown IDs", func(t *testing.T) {
		s := model.NewSecurityControlSet(types.ControlMFAEnabled, types.ControlIRTabletop, "firewall")
		gt.Value(t, s).Equal(model.SecurityControlSet{MFAEnabled: true, IRTabletop: true})
	})
}

func TestOrganizationProfile_Value(t *testing.T) {
	p := model.OrganizationProfile{Employees: 250, Revenue: 50_000_000, InsuranceLimit: 1_000_000}

	v, ok := p.Value(types.InputFieldEmployees)
	gt.Bool(t, ok).True()
	gt.Value(t, v).Equal(250.0)

	v, ok = p.Value(types.InputFieldRevenue)
	gt.Bool(t, ok).True()
	gt.Value(t, v).Equal(50_000_000.0)

	v, ok = p.Value(types.InputFieldInsuranceLimit)
	gt.Bool(t, ok).True()
	gt.Value(t, v).Equal(1_000_000.0)

	_, ok = p.Value("unknown")
	gt.Bool(t, ok).False()
}
