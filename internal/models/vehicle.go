package models

// SizeClass is the coarse vehicle size classification used by the
// maintenance and tire cost tables.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
	SizeSUV    SizeClass = "suv"
)

// IsValidSizeClass checks if a size class is valid.
func IsValidSizeClass(s SizeClass) bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeSUV:
		return true
	default:
		return false
	}
}

// VehicleFacts holds the facts extracted from a single listing. Every field
// except Price and FuelType is optional; a zero value means "not present in
// the listing" and is resolved to a default by the estimation engine.
type VehicleFacts struct {
	Price             float64   `json:"price" bson:"price"`
	FuelType          string    `json:"fuel_type" bson:"fuel_type"` // free text, normalized by the engine
	ConsumptionPerMil float64   `json:"consumption_per_mil,omitempty" bson:"consumption_per_mil,omitempty"`
	ModelYear         int       `json:"model_year,omitempty" bson:"model_year,omitempty"`
	Mileage           float64   `json:"mileage,omitempty" bson:"mileage,omitempty"` // in kilometers
	PowerKW           float64   `json:"power_kw,omitempty" bson:"power_kw,omitempty"`
	CO2GramsPerKm     float64   `json:"co2_g_km,omitempty" bson:"co2_g_km,omitempty"`
	SizeClass         SizeClass `json:"size_class,omitempty" bson:"size_class,omitempty"`
	InterestRate      float64   `json:"interest_rate,omitempty" bson:"interest_rate,omitempty"` // effective rate from the listing, in percent
	AnnualTax         float64   `json:"annual_tax,omitempty" bson:"annual_tax,omitempty"`
	EstimatedFields   []string  `json:"estimated_fields,omitempty" bson:"estimated_fields,omitempty"`
}
