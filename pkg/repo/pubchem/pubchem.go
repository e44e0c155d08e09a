package pubchem

import (
	"context"
	"net/http"
	"time"

	resty "github.com/go-resty/resty/v2"

	"github.com/labworks/labman/internal/config"
	"github.com/labworks/labman/pkg/common/code"
	"github.com/labworks/labman/pkg/middleware/logger"
	"github.com/labworks/labman/pkg/repo"
)

type property struct {
	Title            string `json:"Title"`
	MolecularFormula string `json:"MolecularFormula"`
	IUPACName        string `json:"IUPACName"`
	IsomericSMILES   string `json:"IsomericSMILES"`
	CanonicalSMILES  string `json:"CanonicalSMILES"`
	SMILES           string `json:"SMILES"`
}

type PropertyResponse struct {
	PropertyTable struct {
		Properties []property `json:"Properties"`
	} `json:"PropertyTable"`
}

type pubchemImpl struct {
	client *resty.Client
}

func NewPubChemRepo() repo.PubChemRepo {
	baseURL := config.Global().RPC.PubChem.Addr

	return &pubchemImpl{
		client: resty.New().
			SetTimeout(30*time.Second).
			EnableTrace().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

func (p *pubchemImpl) GetCompoundByCAS(ctx context.Context, cas string) (*repo.CompoundInfo, error) {
	properties := "Title,MolecularFormula,IUPACName,IsomericSMILES,CanonicalSMILES,SMILES"
	urlPath := "/rest/pug/compound/name/{cas}/property/{props}/JSON"

	propResp := &PropertyResponse{}
	res, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"props": properties,
			"cas":   cas,
		}).
		SetResult(propResp).
		Get(urlPath)
	if err != nil {
		logger.Errorf(ctx, "request PubChem properties err: %+v", err)
		return nil, code.RPCHttpErr.WithErr(err)
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, code.CompoundNotFoundErr.WithMsgf("no PubChem compound matches %q", cas)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, code.RPCHttpCodeErr.WithMsgf("PubChem property query failed: status %d", res.StatusCode())
	}

	if len(propResp.PropertyTable.Properties) == 0 {
		return nil, code.CompoundNotFoundErr.WithMsgf("empty PubChem property table for %q", cas)
	}

	propData := propResp.PropertyTable.Properties[0]

	name := propData.Title
	if name == "" {
		name = propData.IUPACName
	}

	smiles := propData.IsomericSMILES
	if smiles == "" {
		smiles = propData.CanonicalSMILES
	}
	if smiles == "" {
		smiles = propData.SMILES
	}

	return &repo.CompoundInfo{
		Name:             name,
		MolecularFormula: propData.MolecularFormula,
		SMILES:           smiles,
	}, nil
}
