package repo

import "context"

type CompoundInfo struct {
	Name             string `json:"name"`
	MolecularFormula string `json:"molecular_formula"`
	SMILES           string `json:"smiles"`
}

// PubChemRepo resolves a CAS registry number against the public PubChem
// REST API; the inventory form uses it to prefill reagent fields.
type PubChemRepo interface {
	GetCompoundByCAS(ctx context.Context, cas string) (*CompoundInfo, error)
}
