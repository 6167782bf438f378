package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/vehicle-tco/internal/models"
)

// referenceInput is the documented gasoline scenario: 300,000 purchase,
// 0.7 l/mil, 1,500 mil/year, cash, medium size, normal levels, 5-year
// horizon, age unknown.
func referenceInput() Input {
	return assembleAt(
		models.VehicleFacts{
			Price:             300000,
			FuelType:          "Bensin",
			ConsumptionPerMil: 0.7,
			AnnualTax:         2000,
		},
		models.OwnershipConfig{
			AnnualMil:        1500,
			FuelPrice:        18.0,
			InsuranceMonthly: 300,
			OwnershipYears:   5,
			Financing:        models.Financing{Mode: models.FinanceCash},
		},
		testYear,
	)
}

func TestCalculateReferenceScenario(t *testing.T) {
	b := Calculate(referenceInput())

	// 1,500 mil * 0.7 l/mil * 18.0 per liter.
	assert.Equal(t, 18900.0, b.Fuel)
	// Medium/normal base at exactly the reference distance.
	assert.Equal(t, 6000.0, b.Maintenance)
	// 15,000 km/year over a 60,000 km set: 4-year interval on a 6,000 set.
	assert.Equal(t, 1500.0, b.Tires)
	assert.Equal(t, 2000.0, b.Tax)
	assert.Equal(t, 3600.0, b.Insurance)
	assert.Equal(t, 0.0, b.Parking)
	assert.Equal(t, 0.0, b.Care)
	assert.Equal(t, 0.0, b.Financing)
	// Bracketed declining balance from age 0 with the gasoline factor.
	assert.Equal(t, 27989.0, b.Depreciation)

	assert.Equal(t, 26400.0, b.VariableCosts)
	assert.Equal(t, 33589.0, b.FixedCosts)
	assert.Equal(t, 59989.0, b.TotalAnnual)
	assert.Equal(t, 40.0, b.CostPerMil)
	assert.Equal(t, "4.00", b.CostPerKm)
	assert.Equal(t, 4999.0, b.MonthlyTotal)
}

func TestCalculateResidualLoanScenario(t *testing.T) {
	// 200,000 at 0% down: principal 200,000, residual 100,000, 5% APR over
	// 36 months, no admin fee. Interest on the average balance of 150,000.
	in := referenceInput()
	in.Price = 200000
	in.Financing = models.Financing{
		Mode: models.FinanceLoan,
		Loan: models.LoanTerms{
			Type:           models.LoanResidual,
			DownPaymentPct: 0,
			ResidualPct:    50,
			InterestRate:   5,
			TermYears:      3,
		},
	}
	b := Calculate(in)

	// 100000/36 + 150000*0.05/12 = 3402.78, rounded first.
	assert.Equal(t, 3403.0, b.FinancingMonthly)
	assert.Equal(t, 40836.0, b.Financing)
}

func TestCalculateFinancingReconciliation(t *testing.T) {
	inputs := []Input{referenceInput()}

	loan := referenceInput()
	loan.Financing = models.Financing{
		Mode: models.FinanceLoan,
		Loan: models.LoanTerms{Type: models.LoanAnnuity, DownPaymentPct: 20, InterestRate: 7.3, TermYears: 5, AdminFeeMonthly: 45},
	}
	inputs = append(inputs, loan)

	lease := referenceInput()
	lease.Financing = models.Financing{
		Mode:  models.FinanceLeasing,
		Lease: models.LeaseTerms{MonthlyFee: 3999.5},
	}
	inputs = append(inputs, lease)

	for _, in := range inputs {
		b := Calculate(in)
		assert.Equal(t, b.FinancingMonthly*12, b.Financing, "annual financing must be the rounded installment times 12")
		assert.Equal(t, b.FinancingMonthly, math.Round(b.FinancingMonthly), "installment must already be rounded")
	}
}

func TestCalculateCashModeZeroFinancing(t *testing.T) {
	in := referenceInput()
	in.Financing = models.Financing{
		Mode: models.FinanceCash,
		// Loan fields populated but irrelevant in cash mode.
		Loan: models.LoanTerms{Type: models.LoanAnnuity, DownPaymentPct: 10, InterestRate: 9, TermYears: 7, AdminFeeMonthly: 99},
	}
	b := Calculate(in)
	assert.Equal(t, 0.0, b.Financing)
	assert.Equal(t, 0.0, b.FinancingMonthly)
}

func TestCalculateZeroDistance(t *testing.T) {
	in := referenceInput()
	in.AnnualMil = 0
	b := Calculate(in)

	assert.Equal(t, 0.0, b.Fuel)
	assert.Equal(t, 0.0, b.CostPerMil)
	assert.Equal(t, "0.00", b.CostPerKm)
	// Tires amortize over the maximum interval instead of dividing by zero.
	assert.Equal(t, round(tireSetCost[models.SizeMedium]/tireMaxIntervalYrs), b.Tires)
	assert.False(t, math.IsNaN(b.TotalAnnual))
	assert.False(t, math.IsInf(b.TotalAnnual, 0))
}

func TestCalculateNonNegativity(t *testing.T) {
	inputs := []Input{referenceInput()}

	ev := assembleAt(
		models.VehicleFacts{Price: 450000, FuelType: "El", ModelYear: testYear - 2},
		models.OwnershipConfig{
			AnnualMil:          2500,
			SecondaryFuelPrice: 2.5,
			OwnershipYears:     10,
			Financing:          models.Financing{Mode: models.FinanceLoan, Loan: models.LoanTerms{Type: models.LoanAnnuity}},
		},
		testYear,
	)
	inputs = append(inputs, ev)

	empty := assembleAt(models.VehicleFacts{}, models.OwnershipConfig{}, testYear)
	inputs = append(inputs, empty)

	for _, in := range inputs {
		b := Calculate(in)
		for name, v := range map[string]float64{
			"fuel": b.Fuel, "depreciation": b.Depreciation, "tax": b.Tax,
			"maintenance": b.Maintenance, "tires": b.Tires, "insurance": b.Insurance,
			"parking": b.Parking, "care": b.Care, "financing": b.Financing,
			"total": b.TotalAnnual,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "category %s", name)
		}
	}
}

// The annuity installment must pay the loan off exactly: summing the
// principal portion of each payment over the full term recovers the
// principal (standard amortization identity).
func TestAnnuityPaysOffPrincipal(t *testing.T) {
	terms := models.LoanTerms{
		Type:           models.LoanAnnuity,
		DownPaymentPct: 20,
		InterestRate:   5,
		TermYears:      3,
	}
	price := 250000.0
	principal := price * 0.8
	monthlyRate := terms.InterestRate / 100 / 12
	installment := loanInstallment(price, terms) // AdminFeeMonthly is zero here

	balance := principal
	for i := 0; i < terms.TermYears*12; i++ {
		interest := balance * monthlyRate
		balance -= installment - interest
	}
	assert.InDelta(t, 0, balance, 1e-6)
}

func TestAnnuityZeroRate(t *testing.T) {
	terms := models.LoanTerms{Type: models.LoanAnnuity, DownPaymentPct: 0, InterestRate: 0, TermYears: 3}
	got := loanInstallment(120000, terms)
	assert.InDelta(t, 120000.0/36, got, 1e-9)
}

func TestDepreciationMonotoneInLevel(t *testing.T) {
	var totals []float64
	for _, lvl := range []models.Level{models.LevelLow, models.LevelNormal, models.LevelHigh} {
		in := referenceInput()
		in.DepreciationLevel = lvl
		totals = append(totals, Calculate(in).Depreciation)
	}
	require.Len(t, totals, 3)
	assert.Less(t, totals[0], totals[1])
	assert.Less(t, totals[1], totals[2])
}

func TestDepreciationCompoundsOnRemainingValue(t *testing.T) {
	in := referenceInput()
	in.OwnershipYears = 2

	// Recompute the two-year declining balance by hand.
	f := depreciationFuelFactor[FuelGasoline]
	v := in.Price
	loss1 := v * depreciationRate(0) * f
	loss2 := (v - loss1) * depreciationRate(1) * f
	want := round((loss1 + loss2) / 2)

	assert.Equal(t, want, Calculate(in).Depreciation)
}

func TestFuelBlendBoundaries(t *testing.T) {
	base := models.VehicleFacts{Price: 300000, FuelType: "Laddhybrid", ConsumptionPerMil: 0.5}
	cfg := models.OwnershipConfig{AnnualMil: 1500, FuelPrice: 18, SecondaryFuelPrice: 2.5, OwnershipYears: 5}

	cfg.SecondaryShare = 0
	pure := Calculate(assembleAt(base, cfg, testYear))
	assert.Equal(t, round(1500*0.5*18), pure.Fuel, "share 0 equals the pure primary calculation")

	cfg.SecondaryShare = 1
	electric := Calculate(assembleAt(base, cfg, testYear))
	assert.Equal(t, round(1500*0.5*2.5), electric.Fuel, "share 1 equals the pure secondary calculation")
}

func TestLeaseInsuranceSuppressed(t *testing.T) {
	in := referenceInput()
	in.InsuranceMonthly = 500
	in.Financing = models.Financing{
		Mode:  models.FinanceLeasing,
		Lease: models.LeaseTerms{MonthlyFee: 4200, InsuranceIncluded: true},
	}
	b := Calculate(in)
	assert.Equal(t, 0.0, b.Insurance)
	assert.Equal(t, 4200.0, b.FinancingMonthly)

	in.Financing.Lease.InsuranceIncluded = false
	b = Calculate(in)
	assert.Equal(t, 6000.0, b.Insurance)
}

func TestTireOverrideWins(t *testing.T) {
	in := referenceInput()
	in.TireCostOverride = 2750
	assert.Equal(t, 2750.0, Calculate(in).Tires)
}

func TestTireIntervalClamped(t *testing.T) {
	in := referenceInput()

	// 4,000 mil/year would replace sets faster than every 2 years.
	in.AnnualMil = 4000
	assert.Equal(t, round(tireSetCost[models.SizeMedium]/tireMinIntervalYrs), Calculate(in).Tires)

	// 500 mil/year would stretch past the 5-year cap.
	in.AnnualMil = 500
	assert.Equal(t, round(tireSetCost[models.SizeMedium]/tireMaxIntervalYrs), Calculate(in).Tires)
}

func TestMonthlyTotalReconciles(t *testing.T) {
	b := Calculate(referenceInput())
	assert.Equal(t, round(b.TotalAnnual/12), b.MonthlyTotal)
	assert.Equal(t, b.TotalAnnual, b.VariableCosts+b.FixedCosts)
}

func TestMalusAddsToTax(t *testing.T) {
	in := referenceInput()
	in.MalusTax = 4800
	assert.Equal(t, 6800.0, Calculate(in).Tax)
}
