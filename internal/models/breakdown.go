package models

// CostBreakdown is the full annual cost picture for one vehicle and one
// ownership configuration. All amounts are whole currency units per year
// unless stated otherwise. A breakdown is recomputed fresh on every
// estimate; consumers must not mutate it.
type CostBreakdown struct {
	Fuel         float64 `json:"fuel" bson:"fuel"`
	Depreciation float64 `json:"depreciation" bson:"depreciation"`
	Tax          float64 `json:"tax" bson:"tax"`
	Maintenance  float64 `json:"maintenance" bson:"maintenance"`
	Tires        float64 `json:"tires" bson:"tires"`
	Insurance    float64 `json:"insurance" bson:"insurance"`
	Parking      float64 `json:"parking" bson:"parking"`
	Care         float64 `json:"care" bson:"care"`

	// Financing is always FinancingMonthly*12 so the displayed monthly and
	// annual figures reconcile exactly for this line.
	Financing        float64 `json:"financing" bson:"financing"`
	FinancingMonthly float64 `json:"financing_monthly" bson:"financing_monthly"`

	VariableCosts float64 `json:"variable_costs" bson:"variable_costs"` // fuel + maintenance + tires
	FixedCosts    float64 `json:"fixed_costs" bson:"fixed_costs"`
	TotalAnnual   float64 `json:"total_annual" bson:"total_annual"`
	CostPerMil    float64 `json:"cost_per_mil" bson:"cost_per_mil"`
	CostPerKm     string  `json:"cost_per_km" bson:"cost_per_km"` // 2-decimal display string
	MonthlyTotal  float64 `json:"monthly_total" bson:"monthly_total"`
}
