package chem

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Molar masses in g/mol.
const (
	trisMolarMass      = 121.14
	naclMolarMass      = 58.44
	dibasicMolarMass   = 141.96 // Na2HPO4
	monobasicMolarMass = 119.98 // NaH2PO4
)

// phosphatePKa2 anchors the Henderson-Hasselbalch approximation for the
// monobasic/dibasic phosphate pair.
const phosphatePKa2 = 7.2

// PBS salt masses are fixed by the recipe and do not scale with the target
// volume.
const (
	pbsNaClGrams = 8.77
	pbsKClGrams  = 0.2
)

// Recipe is a computed buffer preparation: component masses in grams,
// liquid additions in milliliters, and numbered bench instructions.
type Recipe struct {
	Name             string             `json:"name"`
	ComponentMasses  map[string]float64 `json:"component_masses"`
	AuxiliaryVolumes map[string]float64 `json:"auxiliary_volumes"`
	Instructions     []string           `json:"instructions"`
}

// BufferSpec is the variant input of ComputeBuffer. Only the spec types in
// this package implement it.
type BufferSpec interface {
	bufferName() string
}

// TrisSpec prepares Tris-HCl buffer over its usable pH range 7.0 to 9.0.
// SaltConc is read only when AddNaCl is set.
type TrisSpec struct {
	PH            float64 `json:"ph"`
	Concentration float64 `json:"concentration"` // M
	VolumeL       float64 `json:"volume_l"`
	AddNaCl       bool    `json:"add_nacl"`
	SaltConc      float64 `json:"salt_conc"` // M
}

func (TrisSpec) bufferName() string { return "Tris" }

// PhosphateSpec prepares sodium phosphate buffer from the monobasic and
// dibasic salts over its usable pH range 5.8 to 8.0. The NaCl and KCl
// flags add the fixed PBS salt masses.
type PhosphateSpec struct {
	PH            float64 `json:"ph"`
	Concentration float64 `json:"concentration"` // M
	VolumeL       float64 `json:"volume_l"`
	AddNaCl       bool    `json:"add_nacl"`
	AddKCl        bool    `json:"add_kcl"`
}

func (PhosphateSpec) bufferName() string { return "Phosphate" }

// CustomSpec prepares a two-component buffer from user-supplied component
// lines, one "name, molecular weight, pKa" triple per line. The first
// component is treated as the acid.
type CustomSpec struct {
	Components         string  `json:"components"`
	PH                 float64 `json:"ph"`
	TotalConcentration float64 `json:"total_concentration"` // M
	VolumeL            float64 `json:"volume_l"`
}

func (CustomSpec) bufferName() string { return "Custom" }

// ComputeBuffer dispatches to the recipe function for the spec variant.
func ComputeBuffer(spec BufferSpec) (*Recipe, error) {
	switch s := spec.(type) {
	case TrisSpec:
		return TrisBuffer(s)
	case *TrisSpec:
		return TrisBuffer(*s)
	case PhosphateSpec:
		return PhosphateBuffer(s)
	case *PhosphateSpec:
		return PhosphateBuffer(*s)
	case CustomSpec:
		return CustomBuffer(s)
	case *CustomSpec:
		return CustomBuffer(*s)
	default:
		return nil, &UnsupportedError{Reason: fmt.Sprintf("%s buffers are not supported", spec.bufferName())}
	}
}

// TrisBuffer computes a Tris-HCl recipe. The HCl volume is the linear
// heuristic (8.0 - pH) * 10 mL, not a titration curve; above pH 8.0 it
// goes negative, meaning base rather than acid is needed.
func TrisBuffer(spec TrisSpec) (*Recipe, error) {
	if spec.PH < 7.0 || spec.PH > 9.0 {
		return nil, &ValidationError{Field: "ph", Reason: "Tris buffers cover pH 7.0 to 9.0"}
	}
	if err := requirePositive("concentration", spec.Concentration); err != nil {
		return nil, err
	}
	if err := requirePositive("volume", spec.VolumeL); err != nil {
		return nil, err
	}
	if spec.AddNaCl {
		if err := requirePositive("salt_concentration", spec.SaltConc); err != nil {
			return nil, err
		}
	}

	trisMass := trisMolarMass * spec.Concentration * spec.VolumeL
	hclML := (8.0 - spec.PH) * 10

	r := &Recipe{
		Name:             fmt.Sprintf("Tris buffer, pH %.1f, %g M", spec.PH, spec.Concentration),
		ComponentMasses:  map[string]float64{"Tris base": trisMass},
		AuxiliaryVolumes: map[string]float64{"concentrated HCl": hclML},
		Instructions: []string{
			fmt.Sprintf("Dissolve %.2f g Tris base in %.2f L water", trisMass, spec.VolumeL*0.8),
			fmt.Sprintf("Add ~%.1f mL concentrated HCl, adjusting while monitoring pH", hclML),
		},
	}
	if spec.AddNaCl {
		naclMass := spec.SaltConc * naclMolarMass * spec.VolumeL
		r.ComponentMasses["NaCl"] = naclMass
		r.Instructions = append(r.Instructions,
			fmt.Sprintf("Add %.2f g NaCl and adjust volume to %g L with water", naclMass, spec.VolumeL))
	} else {
		r.Instructions = append(r.Instructions,
			fmt.Sprintf("Adjust volume to %g L with water", spec.VolumeL))
	}
	r.Instructions = append(r.Instructions, "Check and fine-tune the pH")
	return r, nil
}

// PhosphateBuffer computes a monobasic/dibasic sodium phosphate recipe.
func PhosphateBuffer(spec PhosphateSpec) (*Recipe, error) {
	if spec.PH < 5.8 || spec.PH > 8.0 {
		return nil, &ValidationError{Field: "ph", Reason: "phosphate buffers cover pH 5.8 to 8.0"}
	}
	if err := requirePositive("concentration", spec.Concentration); err != nil {
		return nil, err
	}
	if err := requirePositive("volume", spec.VolumeL); err != nil {
		return nil, err
	}

	ratio := phosphateRatio(spec.PH)
	totalMoles := spec.Concentration * spec.VolumeL
	dibasicMoles := totalMoles / (1 + ratio)
	monoMoles := totalMoles - dibasicMoles

	dibasicMass := dibasicMoles * dibasicMolarMass
	monoMass := monoMoles * monobasicMolarMass

	r := &Recipe{
		Name: fmt.Sprintf("Phosphate buffer, pH %.1f, %g M", spec.PH, spec.Concentration),
		ComponentMasses: map[string]float64{
			"Na2HPO4": dibasicMass,
			"NaH2PO4": monoMass,
		},
		AuxiliaryVolumes: map[string]float64{},
		Instructions: []string{
			fmt.Sprintf("Dissolve %.2f g Na2HPO4 and %.2f g NaH2PO4 in %.2f L water",
				dibasicMass, monoMass, spec.VolumeL*0.8),
		},
	}
	if line := addPBSSalts(r, spec.AddNaCl, spec.AddKCl); line != "" {
		r.Instructions = append(r.Instructions, line)
	}
	r.Instructions = append(r.Instructions,
		fmt.Sprintf("Adjust volume to %g L with water", spec.VolumeL),
		"Check and adjust the pH if needed",
	)
	return r, nil
}

// phosphateRatio gives the monobasic:dibasic mole ratio for a target pH,
// Henderson-Hasselbalch around pKa2 clamped to 9.0 below pH 6.0 and 0.1
// above pH 7.5.
func phosphateRatio(ph float64) float64 {
	switch {
	case ph < 6.0:
		return 9.0
	case ph > 7.5:
		return 0.1
	default:
		return math.Pow(10, phosphatePKa2-ph)
	}
}

func addPBSSalts(r *Recipe, addNaCl, addKCl bool) string {
	parts := make([]string, 0, 2)
	if addNaCl {
		r.ComponentMasses["NaCl"] = pbsNaClGrams
		parts = append(parts, fmt.Sprintf("%.2f g NaCl", pbsNaClGrams))
	}
	if addKCl {
		r.ComponentMasses["KCl"] = pbsKClGrams
		parts = append(parts, fmt.Sprintf("%.2f g KCl", pbsKClGrams))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Add " + strings.Join(parts, " and ") + " (standard 1 L PBS amounts)"
}

type bufferComponent struct {
	name string
	mw   float64
	pka  float64
}

// CustomBuffer computes a two-component recipe. The base:acid mole ratio
// comes from Henderson-Hasselbalch using the first component's pKa.
func CustomBuffer(spec CustomSpec) (*Recipe, error) {
	if spec.PH < 0 || spec.PH > 14 {
		return nil, &ValidationError{Field: "ph", Reason: "must be between 0 and 14"}
	}
	if err := requirePositive("total_concentration", spec.TotalConcentration); err != nil {
		return nil, err
	}
	if err := requirePositive("volume", spec.VolumeL); err != nil {
		return nil, err
	}

	comps, err := parseComponents(spec.Components)
	if err != nil {
		return nil, err
	}
	if len(comps) != 2 {
		return nil, &UnsupportedError{
			Reason: fmt.Sprintf("custom buffers support exactly two components, got %d", len(comps)),
		}
	}
	acid, base := comps[0], comps[1]
	if acid.name == base.name {
		return nil, &ValidationError{Field: "components", Reason: "component names must differ"}
	}

	ratio := math.Pow(10, spec.PH-acid.pka)
	totalMoles := spec.TotalConcentration * spec.VolumeL
	acidMoles := totalMoles / (1 + ratio)
	baseMoles := totalMoles - acidMoles

	acidMass := acidMoles * acid.mw
	baseMass := baseMoles * base.mw

	return &Recipe{
		Name: fmt.Sprintf("Custom buffer, pH %.1f, %g M", spec.PH, spec.TotalConcentration),
		ComponentMasses: map[string]float64{
			acid.name: acidMass,
			base.name: baseMass,
		},
		AuxiliaryVolumes: map[string]float64{},
		Instructions: []string{
			fmt.Sprintf("Dissolve %.2f g %s and %.2f g %s in %.2f L water",
				acidMass, acid.name, baseMass, base.name, spec.VolumeL*0.8),
			fmt.Sprintf("Adjust volume to %g L with water", spec.VolumeL),
			"Check and fine-tune the pH",
		},
	}, nil
}

// parseComponents reads one "name, molecular weight, pKa" triple per
// non-empty line. Error line numbers are 1-based over the raw input.
func parseComponents(text string) ([]bufferComponent, error) {
	var comps []bufferComponent
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, &ParseError{
				Line:   i + 1,
				Reason: fmt.Sprintf("want 3 comma-separated fields (name, MW, pKa), got %d", len(fields)),
			}
		}
		name := strings.TrimSpace(fields[0])
		if name == "" {
			return nil, &ParseError{Line: i + 1, Reason: "component name is empty"}
		}
		mwField := strings.TrimSpace(fields[1])
		mw, err := strconv.ParseFloat(mwField, 64)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Reason: fmt.Sprintf("molecular weight %q is not a number", mwField)}
		}
		if mw <= 0 {
			return nil, &ParseError{Line: i + 1, Reason: "molecular weight must be greater than zero"}
		}
		pkaField := strings.TrimSpace(fields[2])
		pka, err := strconv.ParseFloat(pkaField, 64)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Reason: fmt.Sprintf("pKa %q is not a number", pkaField)}
		}
		comps = append(comps, bufferComponent{name: name, mw: mw, pka: pka})
	}
	if len(comps) == 0 {
		return nil, &ParseError{Line: 1, Reason: "no components given"}
	}
	return comps, nil
}
