package engine

import (
	"time"

	"github.com/ukydev/vehicle-tco/internal/models"
)

// Input is the fully resolved set of scalars the calculator consumes. Every
// optional field of the listing and the configuration has been merged and
// defaulted before this point; Calculate never looks at raw inputs.
type Input struct {
	Price             float64
	FuelType          FuelType
	ConsumptionPerMil float64
	VehicleAge        int
	SizeClass         models.SizeClass

	AnnualMil          float64
	FuelPrice          float64
	SecondaryFuelPrice float64
	SecondaryShare     float64

	MaintenanceLevel  models.Level
	DepreciationLevel models.Level
	OwnershipYears    int

	AnnualTax float64
	MalusTax  float64

	InsuranceMonthly float64
	ParkingMonthly   float64
	CareMonthly      float64
	TireCostOverride float64

	Financing models.Financing
}

// Assemble merges listing facts with the ownership configuration into one
// normalized input. It is a pure defaulting pass with no failure modes:
// anything missing gets a safe default, never an error.
func Assemble(facts models.VehicleFacts, cfg models.OwnershipConfig) Input {
	return assembleAt(facts, cfg, time.Now().Year())
}

func assembleAt(facts models.VehicleFacts, cfg models.OwnershipConfig, currentYear int) Input {
	fuel := NormalizeFuelType(facts.FuelType)

	in := Input{
		Price:             facts.Price,
		FuelType:          fuel,
		ConsumptionPerMil: resolveConsumption(facts.ConsumptionPerMil, fuel),
		VehicleAge:        resolveAge(facts.ModelYear, currentYear),
		SizeClass:         resolveSizeClass(cfg.SizeClass, facts.SizeClass),
		AnnualMil:         cfg.AnnualMil,
		MaintenanceLevel:  resolveLevel(cfg.MaintenanceLevel),
		DepreciationLevel: resolveLevel(cfg.DepreciationLevel),
		OwnershipYears:    cfg.OwnershipYears,
		AnnualTax:         resolveTax(facts.AnnualTax, cfg.AnnualTax, fuel),
		InsuranceMonthly:  cfg.InsuranceMonthly,
		ParkingMonthly:    cfg.ParkingMonthly,
		CareMonthly:       cfg.CareMonthly,
		TireCostOverride:  cfg.TireCostOverride,
		Financing:         resolveFinancing(cfg.Financing, facts.InterestRate),
	}

	if in.OwnershipYears <= 0 {
		in.OwnershipYears = defaultOwnershipYears
	}
	if cfg.Malus {
		in.MalusTax = cfg.MalusAmount
	}

	// Fuel price selection. Electricity is carried in the secondary price
	// field by convention, so for pure EVs the secondary price becomes the
	// primary one. Only plug-in hybrids blend two prices.
	switch fuel {
	case FuelElectric:
		in.FuelPrice = cfg.SecondaryFuelPrice
		in.SecondaryShare = 0
	case FuelPluginHybrid:
		in.FuelPrice = cfg.FuelPrice
		in.SecondaryFuelPrice = cfg.SecondaryFuelPrice
		in.SecondaryShare = clamp01(cfg.SecondaryShare)
	default:
		in.FuelPrice = cfg.FuelPrice
		in.SecondaryShare = 0
	}

	return in
}

func resolveConsumption(measured float64, fuel FuelType) float64 {
	if measured > 0 {
		return measured
	}
	if est, ok := estimatedConsumption[fuel]; ok {
		return est
	}
	return estimatedConsumption[FuelGasoline]
}

// resolveAge turns a model year into the vehicle's current age. An unknown
// model year resolves to age zero, which lands in the steepest depreciation
// bracket; the conservative choice when the listing is silent.
func resolveAge(modelYear, currentYear int) int {
	if modelYear <= 0 {
		return 0
	}
	age := currentYear - modelYear
	if age < 0 {
		return 0
	}
	return age
}

func resolveSizeClass(configured, extracted models.SizeClass) models.SizeClass {
	if models.IsValidSizeClass(configured) {
		return configured
	}
	if models.IsValidSizeClass(extracted) {
		return extracted
	}
	return models.SizeMedium
}

func resolveLevel(l models.Level) models.Level {
	if models.IsValidLevel(l) {
		return l
	}
	return models.LevelNormal
}

// resolveTax prefers the tax printed in the listing, then a user-customized
// value, then the per-fuel default. A configured tax equal to the generic
// preset counts as "not customized".
func resolveTax(extracted, configured float64, fuel FuelType) float64 {
	if extracted > 0 {
		return extracted
	}
	if configured > 0 && configured != models.DefaultAnnualTax {
		return configured
	}
	if tax, ok := defaultAnnualTax[fuel]; ok {
		return tax
	}
	return defaultAnnualTax[FuelGasoline]
}

// resolveFinancing fills every absent financing sub-field with its static
// default so the calculator never branches on missing terms. A listing's
// extracted effective rate takes precedence over the configured one.
func resolveFinancing(f models.Financing, extractedRate float64) models.Financing {
	if f.Mode == "" {
		f.Mode = models.FinanceCash
	}
	if f.Loan.Type != models.LoanResidual && f.Loan.Type != models.LoanAnnuity {
		f.Loan.Type = models.LoanResidual
	}
	if f.Loan.DownPaymentPct <= 0 {
		f.Loan.DownPaymentPct = defaultDownPaymentPct
	}
	if f.Loan.ResidualPct <= 0 {
		f.Loan.ResidualPct = defaultResidualPct
	}
	if extractedRate > 0 {
		f.Loan.InterestRate = extractedRate
	} else if f.Loan.InterestRate <= 0 {
		f.Loan.InterestRate = defaultInterestRatePct
	}
	if f.Loan.TermYears <= 0 {
		f.Loan.TermYears = defaultLoanTermYears
	}
	if f.Loan.AdminFeeMonthly <= 0 {
		f.Loan.AdminFeeMonthly = defaultAdminFeeMonthly
	}
	if f.Lease.Type != models.LeasePrivate && f.Lease.Type != models.LeaseBusiness {
		f.Lease.Type = models.LeasePrivate
	}
	if f.Lease.MonthlyFee <= 0 {
		f.Lease.MonthlyFee = defaultLeaseFeeMonthly
	}
	return f
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
