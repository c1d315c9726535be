package mapper

import (
	"encoding/json"

	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PolicyMapper covers both the own catalog and competitor policies.
// Catalog rows are seeded, so decode failures fall back to empty values.
type PolicyMapper struct{}

func NewPolicyMapper() *PolicyMapper {
	return &PolicyMapper{}
}

func (m *PolicyMapper) PolicyToEntity(p *model.Policy) *entity.Policy {
	if p == nil {
		return nil
	}
	return &entity.Policy{
		Id:                   p.Id,
		Name:                 p.Name,
		Type:                 entity.PolicyType(p.Type),
		EligibilityCriteria:  decodeObject(p.EligibilityCriteria),
		CoverageAmounts:      decodeDecimals(p.CoverageAmounts),
		TermRange:            p.TermRange,
		PremiumRange:         decodeDecimals(p.PremiumRange),
		TaxBenefits:          p.TaxBenefits,
		ClaimSettlementRatio: p.ClaimSettlementRatio,
		RidersAvailable:      decodeStrings(p.RidersAvailable),
		Features:             decodeStrings(p.Features),
		DocumentsRequired:    decodeStrings(p.DocumentsRequired),
		LastUpdated:          p.LastUpdated,
	}
}

func (m *PolicyMapper) PoliciesToEntities(models []*model.Policy) []*entity.Policy {
	entities := make([]*entity.Policy, len(models))
	for i, p := range models {
		entities[i] = m.PolicyToEntity(p)
	}
	return entities
}

func (m *PolicyMapper) PolicyToModel(p *entity.Policy) *model.Policy {
	if p == nil {
		return nil
	}
	return &model.Policy{
		Id:                   p.Id,
		Name:                 p.Name,
		Type:                 string(p.Type),
		EligibilityCriteria:  encode(p.EligibilityCriteria, "{}"),
		CoverageAmounts:      encode(p.CoverageAmounts, "[]"),
		TermRange:            p.TermRange,
		PremiumRange:         encode(p.PremiumRange, "[]"),
		TaxBenefits:          p.TaxBenefits,
		ClaimSettlementRatio: p.ClaimSettlementRatio,
		RidersAvailable:      encode(p.RidersAvailable, "[]"),
		Features:             encode(p.Features, "[]"),
		DocumentsRequired:    encode(p.DocumentsRequired, "[]"),
		LastUpdated:          p.LastUpdated,
	}
}

func (m *PolicyMapper) CompetitorToEntity(p *model.CompetitorPolicy) *entity.CompetitorPolicy {
	if p == nil {
		return nil
	}
	return &entity.CompetitorPolicy{
		Id:                   p.Id,
		Provider:             p.Provider,
		PolicyName:           p.PolicyName,
		Type:                 entity.PolicyType(p.Type),
		CoverageAmount:       p.CoverageAmount,
		Premium:              p.Premium,
		PolicyTerm:           p.PolicyTerm,
		ClaimSettlementRatio: p.ClaimSettlementRatio,
		Features:             decodeStrings(p.Features),
		Pros:                 decodeStrings(p.Pros),
		Cons:                 decodeStrings(p.Cons),
		FetchedFrom:          p.FetchedFrom,
		LastChecked:          p.LastChecked,
	}
}

func (m *PolicyMapper) CompetitorsToEntities(models []*model.CompetitorPolicy) []*entity.CompetitorPolicy {
	entities := make([]*entity.CompetitorPolicy, len(models))
	for i, p := range models {
		entities[i] = m.CompetitorToEntity(p)
	}
	return entities
}

func (m *PolicyMapper) CompetitorToModel(p *entity.CompetitorPolicy) *model.CompetitorPolicy {
	if p == nil {
		return nil
	}
	return &model.CompetitorPolicy{
		Id:                   p.Id,
		Provider:             p.Provider,
		PolicyName:           p.PolicyName,
		Type:                 string(p.Type),
		CoverageAmount:       p.CoverageAmount,
		Premium:              p.Premium,
		PolicyTerm:           p.PolicyTerm,
		ClaimSettlementRatio: p.ClaimSettlementRatio,
		Features:             encode(p.Features, "[]"),
		Pros:                 encode(p.Pros, "[]"),
		Cons:                 encode(p.Cons, "[]"),
		FetchedFrom:          p.FetchedFrom,
		LastChecked:          p.LastChecked,
	}
}

func decodeStrings(raw datatypes.JSON) []string {
	out := []string{}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func decodeDecimals(raw datatypes.JSON) []decimal.Decimal {
	out := []decimal.Decimal{}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []decimal.Decimal{}
	}
	return out
}

func decodeObject(raw datatypes.JSON) map[string]interface{} {
	out := map[string]interface{}{}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]interface{}{}
	}
	return out
}

// encode never fails for the plain slice and map types used here; a nil
// value is stored as the given empty literal.
func encode(v interface{}, empty string) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return datatypes.JSON(empty)
	}
	return datatypes.JSON(b)
}
