package engine

import "github.com/ukydev/vehicle-tco/internal/models"

// The constant tables below are the single place where the numeric model of
// the estimator lives. They are data, not control flow: every lookup is a
// plain map or bracket scan so the numbers stay auditable in one spot. None
// of them are mutated at runtime.

// estimatedConsumption is the fallback consumption per mil (10 km) when the
// listing does not state one. Electric values are kWh, liquid fuels liters,
// biogas kilograms.
var estimatedConsumption = map[FuelType]float64{
	FuelGasoline:     0.65,
	FuelDiesel:       0.55,
	FuelPluginHybrid: 0.35,
	FuelHybrid:       0.45,
	FuelElectric:     1.8,
	FuelE85:          0.85,
	FuelBiogas:       0.75,
}

// defaultAnnualTax is the per-fuel-type annual vehicle tax used when neither
// the listing nor the user supplies one.
var defaultAnnualTax = map[FuelType]float64{
	FuelGasoline:     1200,
	FuelDiesel:       2800,
	FuelPluginHybrid: 360,
	FuelHybrid:       700,
	FuelElectric:     360,
	FuelE85:          800,
	FuelBiogas:       360,
}

// ageBracket gives the base annual depreciation rate for a vehicle whose age
// at the start of the ownership year is at most MaxAge. Brackets are scanned
// in order; the final bracket catches everything older.
type ageBracket struct {
	MaxAge int
	Rate   float64
}

var depreciationBrackets = []ageBracket{
	{MaxAge: 0, Rate: 0.16},
	{MaxAge: 1, Rate: 0.14},
	{MaxAge: 2, Rate: 0.12},
	{MaxAge: 4, Rate: 0.10},
	{MaxAge: 7, Rate: 0.08},
}

// depreciationFloor is the rate beyond the last bracket.
const depreciationFloor = 0.06

func depreciationRate(age int) float64 {
	for _, b := range depreciationBrackets {
		if age <= b.MaxAge {
			return b.Rate
		}
	}
	return depreciationFloor
}

// depreciationFuelFactor scales the base rate per drivetrain. Combustion
// vehicles hold value slightly better, electric vehicles lose it faster,
// plug-in hybrids sit between hybrid and diesel.
var depreciationFuelFactor = map[FuelType]float64{
	FuelGasoline:     0.95,
	FuelHybrid:       0.97,
	FuelPluginHybrid: 0.99,
	FuelDiesel:       1.00,
	FuelE85:          1.00,
	FuelBiogas:       1.00,
	FuelElectric:     1.08,
}

// depreciationLevelFactor is the user's low/normal/high risk adjustment.
var depreciationLevelFactor = map[models.Level]float64{
	models.LevelLow:    0.85,
	models.LevelNormal: 1.00,
	models.LevelHigh:   1.15,
}

// referenceAnnualMil is the yearly distance the maintenance table is
// normalized to; maintenance scales linearly with distance around it.
const referenceAnnualMil = 1500.0

// maintenanceBase is the annual maintenance cost at the reference distance,
// by size class and service level.
var maintenanceBase = map[models.SizeClass]map[models.Level]float64{
	models.SizeSmall:  {models.LevelLow: 3000, models.LevelNormal: 4500, models.LevelHigh: 6500},
	models.SizeMedium: {models.LevelLow: 4000, models.LevelNormal: 6000, models.LevelHigh: 8500},
	models.SizeLarge:  {models.LevelLow: 5000, models.LevelNormal: 7500, models.LevelHigh: 10500},
	models.SizeSUV:    {models.LevelLow: 5500, models.LevelNormal: 8000, models.LevelHigh: 11500},
}

// tireSetCost is the cost of one full tire replacement by size class.
var tireSetCost = map[models.SizeClass]float64{
	models.SizeSmall:  4000,
	models.SizeMedium: 6000,
	models.SizeLarge:  8000,
	models.SizeSUV:    9000,
}

const (
	tireLifetimeKm     = 60000.0
	tireMinIntervalYrs = 2.0
	tireMaxIntervalYrs = 5.0
	milToKm            = 10.0
	monthsPerYear      = 12
)

// Static financing defaults applied by the assembler when the configuration
// leaves a loan or lease field unset.
const (
	defaultDownPaymentPct  = 20.0
	defaultResidualPct     = 50.0
	defaultInterestRatePct = 5.0
	defaultLoanTermYears   = 3
	defaultAdminFeeMonthly = 60.0
	defaultLeaseFeeMonthly = 4000.0
	defaultOwnershipYears  = 5
)
