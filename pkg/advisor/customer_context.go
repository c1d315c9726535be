package advisor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"abhi-advisor-be/internal/entity"

	"github.com/shopspring/decimal"
)

// BuildCustomerContext renders the customer profile block used in the
// system prompt. It returns "" when the customer is missing any of id, name,
// age or the existing-policies list, so callers never get partial text.
func BuildCustomerContext(c *entity.Customer) string {
	if !hasRequiredFields(c) {
		return ""
	}

	var b strings.Builder
	b.WriteString("Customer Profile:\n")
	writeField(&b, "Name", c.Name)
	writeField(&b, "Age", strconv.Itoa(c.Age))
	writeField(&b, "Gender", c.Gender)
	writeField(&b, "Marital Status", c.MaritalStatus)
	writeField(&b, "Profession", c.Profession)
	writeField(&b, "Income Bracket", c.IncomeBracket)
	writeField(&b, "City", c.City)
	writeField(&b, "Dependents", strconv.Itoa(c.DependentsCount))
	writeField(&b, "Risk Appetite", c.RiskAppetite)
	writeField(&b, "Financial Goals", strings.Join(c.FinancialGoals, ", "))
	writeField(&b, "Health Conditions", healthSummary(c.HealthConditions))
	writeField(&b, "Existing Policies", policiesSummary(c.ExistingPolicies))

	return strings.TrimRight(b.String(), "\n")
}

func hasRequiredFields(c *entity.Customer) bool {
	if c == nil {
		return false
	}
	return strings.TrimSpace(c.Id) != "" &&
		strings.TrimSpace(c.Name) != "" &&
		c.Age > 0 &&
		c.ExistingPolicies != nil
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

// ConditionLabel turns a stored key such as "heart_disease" into "heart disease".
func ConditionLabel(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", " ")
}

func healthSummary(conditions entity.HealthConditions) string {
	active := make([]string, 0, len(conditions))
	for key, present := range conditions {
		if present {
			active = append(active, ConditionLabel(key))
		}
	}
	if len(active) == 0 {
		return "None reported"
	}
	sort.Strings(active)
	return strings.Join(active, ", ")
}

func policiesSummary(policies []entity.ExistingPolicy) string {
	if len(policies) == 0 {
		return "None"
	}
	lines := make([]string, 0, len(policies))
	for _, p := range policies {
		lines = append(lines, fmt.Sprintf("%s %s (₹%s coverage, %s/year)",
			p.Provider, p.Type, coverageText(p.Coverage), Rupees(p.Premium)))
	}
	return strings.Join(lines, ", ")
}

// coverageText groups plain numbers and leaves labels like "Market Linked" alone.
func coverageText(coverage string) string {
	coverage = strings.TrimSpace(coverage)
	if d, err := decimal.NewFromString(coverage); err == nil {
		return FormatINR(d)
	}
	return coverage
}
