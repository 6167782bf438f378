package engine

import (
	"fmt"
	"math"

	"github.com/ukydev/vehicle-tco/internal/models"
)

// Calculate computes the full cost breakdown for one normalized input. It is
// a pure, total function: it never fails, holds no state, and guards every
// division so structurally complete input always yields a finite breakdown.
//
// Rounding order is part of the contract. Financing is rounded at the
// monthly granularity first and annualized as installment*12, so the
// displayed monthly and annual financing figures always reconcile. Every
// other category is rounded at the annual granularity.
func Calculate(in Input) models.CostBreakdown {
	b := models.CostBreakdown{
		Fuel:        round(fuelCost(in)),
		Tax:         round(in.AnnualTax + in.MalusTax),
		Maintenance: round(maintenanceCost(in)),
		Tires:       round(tireCost(in)),
		Parking:     round(in.ParkingMonthly * monthsPerYear),
		Care:        round(in.CareMonthly * monthsPerYear),
	}

	b.Depreciation = round(depreciationCost(in))
	b.FinancingMonthly = financingMonthly(in)
	b.Financing = b.FinancingMonthly * monthsPerYear

	insurance := in.InsuranceMonthly
	if in.Financing.Mode == models.FinanceLeasing && in.Financing.Lease.InsuranceIncluded {
		// The lease fee already covers insurance; charging the separate
		// line as well would double-count it.
		insurance = 0
	}
	b.Insurance = round(insurance * monthsPerYear)

	b.VariableCosts = b.Fuel + b.Maintenance + b.Tires
	b.FixedCosts = b.Tax + b.Insurance + b.Parking + b.Care + b.Financing + b.Depreciation
	b.TotalAnnual = b.VariableCosts + b.FixedCosts

	if in.AnnualMil > 0 {
		b.CostPerMil = round(b.TotalAnnual / in.AnnualMil)
		b.CostPerKm = fmt.Sprintf("%.2f", b.TotalAnnual/(in.AnnualMil*milToKm))
	} else {
		b.CostPerMil = 0
		b.CostPerKm = "0.00"
	}
	b.MonthlyTotal = round(b.TotalAnnual / monthsPerYear)

	return b
}

// fuelCost blends the primary and secondary fuel price by the plug-in share.
// For everything but plug-in hybrids the share is zero and the expression
// collapses to consumption * primary price.
func fuelCost(in Input) float64 {
	perMil := in.ConsumptionPerMil *
		(in.FuelPrice*(1-in.SecondaryShare) + in.SecondaryFuelPrice*in.SecondaryShare)
	return in.AnnualMil * perMil
}

// depreciationCost walks the ownership horizon one year at a time. Each
// year's base rate comes from the age bracket the vehicle is in at the start
// of that year, scaled by the drivetrain factor and the user's risk level,
// clamped to [0,1]. The loss compounds against the remaining value
// (declining balance), and the summed loss is averaged to an annual figure.
func depreciationCost(in Input) float64 {
	years := in.OwnershipYears
	if years <= 0 {
		return 0
	}
	fuelFactor := depreciationFuelFactor[in.FuelType]
	if fuelFactor == 0 {
		fuelFactor = 1
	}
	levelFactor := depreciationLevelFactor[in.DepreciationLevel]
	if levelFactor == 0 {
		levelFactor = 1
	}

	value := in.Price
	total := 0.0
	for y := 0; y < years; y++ {
		rate := depreciationRate(in.VehicleAge+y) * fuelFactor * levelFactor
		if rate < 0 {
			rate = 0
		}
		if rate > 1 {
			rate = 1
		}
		loss := value * rate
		value -= loss
		total += loss
	}
	return total / float64(years)
}

func maintenanceCost(in Input) float64 {
	base := maintenanceBase[in.SizeClass][in.MaintenanceLevel]
	return base * (in.AnnualMil / referenceAnnualMil)
}

// tireCost amortizes a tire set over its replacement interval. An explicit
// user override wins; otherwise the interval is lifetime distance over
// annual distance, clamped to [2,5] years. Zero annual distance uses the
// slowest amortization instead of dividing by zero.
func tireCost(in Input) float64 {
	if in.TireCostOverride > 0 {
		return in.TireCostOverride
	}
	interval := tireMaxIntervalYrs
	if annualKm := in.AnnualMil * milToKm; annualKm > 0 {
		interval = tireLifetimeKm / annualKm
		if interval < tireMinIntervalYrs {
			interval = tireMinIntervalYrs
		}
		if interval > tireMaxIntervalYrs {
			interval = tireMaxIntervalYrs
		}
	}
	return tireSetCost[in.SizeClass] / interval
}

// financingMonthly returns the rounded monthly financing cost for the
// selected mode. The monthly admin fee is added to the loan installment in
// both sub-schemes: the configured or defaulted rate is a nominal APR, so
// the fee is not assumed to be priced into it.
func financingMonthly(in Input) float64 {
	switch in.Financing.Mode {
	case models.FinanceLoan:
		return round(loanInstallment(in.Price, in.Financing.Loan))
	case models.FinanceLeasing:
		return round(in.Financing.Lease.MonthlyFee)
	default:
		return 0
	}
}

func loanInstallment(price float64, terms models.LoanTerms) float64 {
	principal := price - price*(terms.DownPaymentPct/100)
	payments := float64(terms.TermYears * monthsPerYear)
	if payments <= 0 {
		return 0
	}
	monthlyRate := terms.InterestRate / 100 / monthsPerYear

	var installment float64
	switch terms.Type {
	case models.LoanAnnuity:
		if monthlyRate > 0 {
			factor := math.Pow(1+monthlyRate, payments)
			installment = principal * monthlyRate * factor / (factor - 1)
		} else {
			installment = principal / payments
		}
	default: // residual/balloon
		residual := price * (terms.ResidualPct / 100)
		amortized := math.Max(0, principal-residual)
		// Interest accrues on the average of the opening and residual
		// balance over the term.
		installment = amortized/payments + monthlyRate*(principal+residual)/2
	}
	return installment + terms.AdminFeeMonthly
}

func round(v float64) float64 {
	return math.Round(v)
}
