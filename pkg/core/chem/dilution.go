package chem

import "fmt"

// DilutionResult is the outcome of a single C1V1 = C2V2 dilution. Volumes
// share whatever unit the requested final volume was given in.
type DilutionResult struct {
	StockVolume    float64 `json:"stock_volume"`
	DiluentVolume  float64 `json:"diluent_volume"`
	DilutionFactor float64 `json:"dilution_factor"`
}

// SimpleDilution computes how much stock at stockConc to mix with diluent
// to obtain finalVolume at finalConc.
func SimpleDilution(stockConc, finalVolume, finalConc float64) (*DilutionResult, error) {
	if err := requirePositive("stock_concentration", stockConc); err != nil {
		return nil, err
	}
	if err := requirePositive("final_volume", finalVolume); err != nil {
		return nil, err
	}
	if err := requirePositive("final_concentration", finalConc); err != nil {
		return nil, err
	}

	stock := (finalConc * finalVolume) / stockConc
	return &DilutionResult{
		StockVolume:    stock,
		DiluentVolume:  finalVolume - stock,
		DilutionFactor: stockConc / finalConc,
	}, nil
}

// SerialStep is one transfer of a serial dilution series.
type SerialStep struct {
	Step          int     `json:"step"`
	Concentration float64 `json:"concentration"`
	StockVolume   float64 `json:"stock_volume"`
	DiluentVolume float64 `json:"diluent_volume"`
}

const maxSerialSteps = 10

// SerialDilution builds a series of steps starting at initialConc, dividing
// the concentration by factor at each step. Every step draws a fixed
// finalVolume/factor from the previous tube, so stock and diluent volumes
// are constant across the series. The returned series plots concentration
// per step on a log scale.
func SerialDilution(initialConc, factor float64, steps int, finalVolume float64) ([]SerialStep, *PlotSeries, error) {
	if err := requirePositive("initial_concentration", initialConc); err != nil {
		return nil, nil, err
	}
	if factor <= 1 {
		return nil, nil, &ValidationError{Field: "dilution_factor", Reason: "must be greater than 1"}
	}
	if steps < 1 || steps > maxSerialSteps {
		return nil, nil, &ValidationError{
			Field:  "steps",
			Reason: fmt.Sprintf("must be between 1 and %d", maxSerialSteps),
		}
	}
	if err := requirePositive("final_volume", finalVolume); err != nil {
		return nil, nil, err
	}

	stock := finalVolume / factor
	series := &PlotSeries{
		Title:  "Serial Dilution Concentration Curve",
		Kind:   PlotLine,
		XLabel: "Step",
		YLabel: "Concentration",
		LogY:   true,
		Points: make([]PlotPoint, 0, steps),
	}

	out := make([]SerialStep, 0, steps)
	conc := initialConc
	for i := 1; i <= steps; i++ {
		out = append(out, SerialStep{
			Step:          i,
			Concentration: conc,
			StockVolume:   stock,
			DiluentVolume: finalVolume - stock,
		})
		series.Points = append(series.Points, PlotPoint{X: float64(i), Y: conc})
		conc /= factor
	}
	return out, series, nil
}
