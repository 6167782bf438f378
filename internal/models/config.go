package models

// Level is a three-step adjustment used for maintenance and depreciation.
type Level string

const (
	LevelLow    Level = "low"
	LevelNormal Level = "normal"
	LevelHigh   Level = "high"
)

// IsValidLevel checks if a level is valid.
func IsValidLevel(l Level) bool {
	switch l {
	case LevelLow, LevelNormal, LevelHigh:
		return true
	default:
		return false
	}
}

// FinancingMode selects how the purchase is financed.
type FinancingMode string

const (
	FinanceCash    FinancingMode = "cash"
	FinanceLoan    FinancingMode = "loan"
	FinanceLeasing FinancingMode = "leasing"
)

// LoanType selects the loan amortization scheme.
type LoanType string

const (
	LoanResidual LoanType = "residual" // balloon loan against a residual value
	LoanAnnuity  LoanType = "annuity"  // standard amortizing loan
)

// LeaseType distinguishes private from business leasing.
type LeaseType string

const (
	LeasePrivate  LeaseType = "private"
	LeaseBusiness LeaseType = "business"
)

// LoanTerms holds the loan-mode financing fields.
type LoanTerms struct {
	Type            LoanType `json:"type,omitempty" bson:"type,omitempty"`
	DownPaymentPct  float64  `json:"down_payment_pct,omitempty" bson:"down_payment_pct,omitempty"`
	ResidualPct     float64  `json:"residual_pct,omitempty" bson:"residual_pct,omitempty"`
	InterestRate    float64  `json:"interest_rate,omitempty" bson:"interest_rate,omitempty"` // APR in percent
	TermYears       int      `json:"term_years,omitempty" bson:"term_years,omitempty"`
	AdminFeeMonthly float64  `json:"admin_fee_monthly,omitempty" bson:"admin_fee_monthly,omitempty"`
}

// LeaseTerms holds the leasing-mode financing fields.
type LeaseTerms struct {
	Type              LeaseType `json:"type,omitempty" bson:"type,omitempty"`
	MonthlyFee        float64   `json:"monthly_fee,omitempty" bson:"monthly_fee,omitempty"`
	InsuranceIncluded bool      `json:"insurance_included,omitempty" bson:"insurance_included,omitempty"`
}

// Financing selects one of cash, loan or leasing. Only the terms matching
// Mode are consulted; the other branch is ignored by the engine.
type Financing struct {
	Mode  FinancingMode `json:"mode" bson:"mode"`
	Loan  LoanTerms     `json:"loan,omitempty" bson:"loan,omitempty"`
	Lease LeaseTerms    `json:"lease,omitempty" bson:"lease,omitempty"`
}

// OwnershipConfig is the user's ownership configuration. It lives
// independently of any one vehicle and is merged with VehicleFacts by the
// estimation engine. All amounts are in whole currency units, distances in
// mil (1 mil = 10 km).
type OwnershipConfig struct {
	AnnualMil          float64   `json:"annual_mil" bson:"annual_mil"`
	FuelPrice          float64   `json:"fuel_price" bson:"fuel_price"`                     // primary fuel, per unit
	SecondaryFuelPrice float64   `json:"secondary_fuel_price" bson:"secondary_fuel_price"` // electricity for EV/plug-in, per kWh
	SecondaryShare     float64   `json:"secondary_share" bson:"secondary_share"`           // 0..1, plug-in electric share
	SizeClass          SizeClass `json:"size_class,omitempty" bson:"size_class,omitempty"` // overrides the listing when set
	MaintenanceLevel   Level     `json:"maintenance_level,omitempty" bson:"maintenance_level,omitempty"`
	DepreciationLevel  Level     `json:"depreciation_level,omitempty" bson:"depreciation_level,omitempty"`
	OwnershipYears     int       `json:"ownership_years" bson:"ownership_years"`
	InsuranceMonthly   float64   `json:"insurance_monthly" bson:"insurance_monthly"`
	ParkingMonthly     float64   `json:"parking_monthly" bson:"parking_monthly"`
	CareMonthly        float64   `json:"care_monthly" bson:"care_monthly"` // washes, small consumables
	Financing          Financing `json:"financing" bson:"financing"`
	AnnualTax          float64   `json:"annual_tax" bson:"annual_tax"` // generic tax field, see DefaultAnnualTax
	Malus              bool      `json:"malus" bson:"malus"`
	MalusAmount        float64   `json:"malus_amount,omitempty" bson:"malus_amount,omitempty"`
	TireCostOverride   float64   `json:"tire_cost_override,omitempty" bson:"tire_cost_override,omitempty"`
}

// DefaultAnnualTax is the generic annual tax preset. A configured tax equal
// to this value is treated as "not customized" and replaced by the
// per-fuel-type default during assembly.
const DefaultAnnualTax = 1500

// DefaultOwnershipConfig returns the configuration used when a user has not
// stored any preferences yet.
func DefaultOwnershipConfig() OwnershipConfig {
	return OwnershipConfig{
		AnnualMil:          1500,
		FuelPrice:          18.0,
		SecondaryFuelPrice: 2.50,
		SecondaryShare:     0.5,
		SizeClass:          SizeMedium,
		MaintenanceLevel:   LevelNormal,
		DepreciationLevel:  LevelNormal,
		OwnershipYears:     5,
		InsuranceMonthly:   400,
		AnnualTax:          DefaultAnnualTax,
		Financing:          Financing{Mode: FinanceCash},
	}
}
