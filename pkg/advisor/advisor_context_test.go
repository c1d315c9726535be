package advisor

import (
	"testing"
	"time"

	"abhi-advisor-be/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleAdvisor() *entity.User {
	return &entity.User{
		Id:       "user-001",
		Username: "sales.adv001",
		Name:     "Sales Advisor 001",
		Role:     entity.UserRoleSalesAdvisor,
		Level:    "level-2",
	}
}

func sampleExemptions() []*entity.UserExemption {
	validTill := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	return []*entity.UserExemption{
		{ProductType: "Health", ExemptionLimit: decimal.NewFromInt(500000), CertificationType: "IRDAI Agent", ValidTill: validTill},
		{ProductType: "Term", ExemptionLimit: decimal.NewFromInt(1000000), CertificationType: "IRDAI Agent", ValidTill: validTill},
	}
}

func TestBuildAdvisorContext(t *testing.T) {
	out := BuildAdvisorContext(sampleAdvisor(), sampleExemptions())

	assert.Contains(t, out, "- Name: Sales Advisor 001")
	assert.Contains(t, out, "- Certification Level: level-2")
	assert.Contains(t, out, "Underwriting Exemption Limits:")
	assert.Contains(t, out, "- Health: ₹5,00,000 (IRDAI Agent, valid till 31 Dec 2025)")
	assert.Contains(t, out, "- Term: ₹10,00,000 (IRDAI Agent, valid till 31 Dec 2025)")
	assert.Contains(t, out, "Address the advisor by name (Sales Advisor 001)")
}

func TestBuildAdvisorContextWithoutExemptions(t *testing.T) {
	out := BuildAdvisorContext(sampleAdvisor(), nil)

	assert.Contains(t, out, "- Username: sales.adv001")
	assert.NotContains(t, out, "Underwriting Exemption Limits:")
	assert.Contains(t, out, "Instructions for this advisor:")
}

func TestBuildAdvisorContextNil(t *testing.T) {
	assert.Empty(t, BuildAdvisorContext(nil, sampleExemptions()))
}
