package chem

// SolidResult is the mass to weigh when preparing a solution from solid
// compound.
type SolidResult struct {
	MassGrams float64 `json:"mass_grams"`
}

// SolutionFromSolid computes the mass of solid compound needed for volumeL
// liters at molarity, corrected for purity in percent. purityPct must fall
// in (0, 100].
func SolutionFromSolid(molarity, volumeL, formulaWeight, purityPct float64) (*SolidResult, error) {
	if err := requirePositive("molarity", molarity); err != nil {
		return nil, err
	}
	if err := requirePositive("volume", volumeL); err != nil {
		return nil, err
	}
	if err := requirePositive("formula_weight", formulaWeight); err != nil {
		return nil, err
	}
	if purityPct <= 0 || purityPct > 100 {
		return nil, &ValidationError{Field: "purity", Reason: "must be greater than 0 and at most 100"}
	}

	mass := (molarity * volumeL * formulaWeight) / (purityPct / 100)
	return &SolidResult{MassGrams: mass}, nil
}

// StockResult is the stock draw when preparing a solution from liquid
// stock: the volume to measure and the solute mass it carries.
type StockResult struct {
	StockVolumeL   float64 `json:"stock_volume_l"`
	StockMassGrams float64 `json:"stock_mass_grams"`
}

// SolutionFromStock computes the stock volume to dilute to targetVolumeL
// liters at targetMolarity and the mass of that draw, given the stock
// density in g/mL.
func SolutionFromStock(stockMolarity, targetMolarity, targetVolumeL, densityGPerML float64) (*StockResult, error) {
	if err := requirePositive("stock_molarity", stockMolarity); err != nil {
		return nil, err
	}
	if err := requirePositive("target_molarity", targetMolarity); err != nil {
		return nil, err
	}
	if err := requirePositive("target_volume", targetVolumeL); err != nil {
		return nil, err
	}
	if err := requirePositive("stock_density", densityGPerML); err != nil {
		return nil, err
	}

	vol := (targetMolarity * targetVolumeL) / stockMolarity
	return &StockResult{
		StockVolumeL:   vol,
		StockMassGrams: vol * 1000 * densityGPerML,
	}, nil
}
