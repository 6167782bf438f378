package engine

import "strings"

// FuelType is the normalized fuel vocabulary of the engine. Listing sites
// describe drivetrains in free text; NormalizeFuelType maps that text onto
// this closed set.
type FuelType string

const (
	FuelGasoline     FuelType = "gasoline"
	FuelDiesel       FuelType = "diesel"
	FuelPluginHybrid FuelType = "plugin-hybrid"
	FuelHybrid       FuelType = "hybrid"
	FuelElectric     FuelType = "electric"
	FuelE85          FuelType = "e85"
	FuelBiogas       FuelType = "biogas"
)

// fuelSynonyms is matched in order. Ordering matters: plug-in hybrids must
// win over plain hybrids, and diesel must be tested before electric so that
// the "el" keyword does not capture "diesel".
var fuelSynonyms = []struct {
	fuel FuelType
	keys []string
}{
	{FuelPluginHybrid, []string{"plug-in", "plugin", "laddhybrid", "phev"}},
	{FuelHybrid, []string{"hybrid", "elhybrid", "hev"}},
	{FuelDiesel, []string{"diesel"}},
	{FuelE85, []string{"e85", "etanol", "ethanol"}},
	{FuelBiogas, []string{"biogas", "fordonsgas", "cng", "gas/bensin"}},
	{FuelElectric, []string{"electric", "el", "ev", "batteri"}},
	{FuelGasoline, []string{"bensin", "gasoline", "petrol"}},
}

// NormalizeFuelType resolves a free-text fuel description to the engine
// vocabulary. Unrecognized input falls back to gasoline, the most common
// listing type.
func NormalizeFuelType(raw string) FuelType {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return FuelGasoline
	}
	for _, entry := range fuelSynonyms {
		for _, key := range entry.keys {
			if strings.Contains(s, key) {
				return entry.fuel
			}
		}
	}
	return FuelGasoline
}
