package models

import "testing"

func TestDefaultOwnershipConfig(t *testing.T) {
	cfg := DefaultOwnershipConfig()

	if !IsValidSizeClass(cfg.SizeClass) {
		t.Errorf("default size class %q is not valid", cfg.SizeClass)
	}
	if !IsValidLevel(cfg.MaintenanceLevel) || !IsValidLevel(cfg.DepreciationLevel) {
		t.Error("default levels must be valid")
	}
	if cfg.Financing.Mode != FinanceCash {
		t.Errorf("default financing mode = %s, want cash", cfg.Financing.Mode)
	}
	if cfg.AnnualMil <= 0 || cfg.OwnershipYears <= 0 {
		t.Error("default distance and horizon must be positive")
	}
	if cfg.AnnualTax != DefaultAnnualTax {
		t.Errorf("default tax = %v, want the generic preset %v", cfg.AnnualTax, DefaultAnnualTax)
	}
}

func TestIsValidSizeClass(t *testing.T) {
	valid := []SizeClass{SizeSmall, SizeMedium, SizeLarge, SizeSUV}
	for _, s := range valid {
		if !IsValidSizeClass(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if IsValidSizeClass("") || IsValidSizeClass("van") {
		t.Error("unexpected size class accepted")
	}
}
