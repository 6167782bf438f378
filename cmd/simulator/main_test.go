package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ukydev/vehicle-tco/internal/engine"
	"github.com/ukydev/vehicle-tco/internal/models"
)

func TestRandomListing_WithinProfileBands(t *testing.T) {
	for i := 0; i < 200; i++ {
		event := randomListing("simulator")
		facts := event.Facts

		assert.Equal(t, "simulator", event.Username)
		assert.Greater(t, facts.Price, 0.0)
		assert.NotEmpty(t, facts.FuelType)
		assert.Greater(t, facts.ConsumptionPerMil, 0.0)
		assert.True(t, models.IsValidSizeClass(facts.SizeClass))
		assert.LessOrEqual(t, facts.ModelYear, time.Now().Year())
		assert.GreaterOrEqual(t, facts.ModelYear, time.Now().Year()-12)
	}
}

func TestRandomListing_FuelLabelsNormalize(t *testing.T) {
	known := map[engine.FuelType]bool{
		engine.FuelGasoline:     true,
		engine.FuelDiesel:       true,
		engine.FuelPluginHybrid: true,
		engine.FuelHybrid:       true,
		engine.FuelElectric:     true,
	}
	for i := 0; i < 200; i++ {
		event := randomListing("simulator")
		ft := engine.NormalizeFuelType(event.Facts.FuelType)
		assert.True(t, known[ft], "label %q normalized to unexpected %s", event.Facts.FuelType, ft)
	}
}

// Every simulated listing must be estimable without error or nonsense.
func TestRandomListing_AlwaysEstimable(t *testing.T) {
	cfg := models.DefaultOwnershipConfig()
	for i := 0; i < 200; i++ {
		event := randomListing("simulator")
		b := engine.Calculate(engine.Assemble(event.Facts, cfg))
		assert.Greater(t, b.TotalAnnual, 0.0)
		assert.Equal(t, b.VariableCosts+b.FixedCosts, b.TotalAnnual)
	}
}
