package advisor

import (
	"fmt"
	"regexp"
	"strings"

	"abhi-advisor-be/internal/entity"

	"github.com/shopspring/decimal"
)

var (
	amountPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(crores?|cr|lakhs?|lacs?)\b`)

	crore = decimal.NewFromInt(10_000_000)
	lakh  = decimal.NewFromInt(100_000)
)

// productKeywords maps a lower-cased exemption product type to the words
// that tie a message to it.
var productKeywords = map[string][]string{
	"health": {"health", "medical"},
	"term":   {"term"},
	"life":   {"life", "term"},
	"ulip":   {"ulip", "wealth", "investment"},
}

// UnderwritingAlert describes a requested coverage that is above the
// advisor's exemption limit for the matched product.
type UnderwritingAlert struct {
	AdvisorName string
	ProductType string
	Requested   decimal.Decimal
	Limit       decimal.Decimal
}

// ParseCoverageAmount returns the largest "<n> lakh|crore" figure in the
// message converted to rupees.
func ParseCoverageAmount(message string) (decimal.Decimal, bool) {
	var (
		best  decimal.Decimal
		found bool
	)
	for _, m := range amountPattern.FindAllStringSubmatch(message, -1) {
		n, err := decimal.NewFromString(m[1])
		if err != nil {
			continue
		}
		unit := lakh
		if strings.HasPrefix(strings.ToLower(m[2]), "cr") {
			unit = crore
		}
		amount := n.Mul(unit)
		if !found || amount.GreaterThan(best) {
			best, found = amount, true
		}
	}
	return best, found
}

// MatchExemption returns the first exemption whose product keywords appear
// in the message.
func MatchExemption(message string, exemptions []*entity.UserExemption) *entity.UserExemption {
	lower := strings.ToLower(message)
	for _, e := range exemptions {
		if e == nil {
			continue
		}
		keywords, ok := productKeywords[strings.ToLower(e.ProductType)]
		if !ok {
			keywords = []string{strings.ToLower(e.ProductType)}
		}
		if containsAny(lower, keywords...) {
			return e
		}
	}
	return nil
}

// CheckUnderwriting returns nil unless the message names a coverage figure
// for a product the advisor holds an exemption for and the figure is above
// that exemption's limit.
func CheckUnderwriting(message string, advisor *entity.User, exemptions []*entity.UserExemption) *UnderwritingAlert {
	if advisor == nil || len(exemptions) == 0 {
		return nil
	}
	amount, ok := ParseCoverageAmount(message)
	if !ok {
		return nil
	}
	exemption := MatchExemption(message, exemptions)
	if exemption == nil || !amount.GreaterThan(exemption.ExemptionLimit) {
		return nil
	}
	return &UnderwritingAlert{
		AdvisorName: advisor.Name,
		ProductType: exemption.ProductType,
		Requested:   amount,
		Limit:       exemption.ExemptionLimit,
	}
}

func (a *UnderwritingAlert) Render() string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "⚠️ **Underwriting Alert for %s**\n\n", a.AdvisorName)
	fmt.Fprintf(&b, "The requested coverage of %s exceeds your %s exemption limit of %s.\n\n",
		Rupees(a.Requested), a.ProductType, Rupees(a.Limit))
	b.WriteString("This case needs full underwriting before it can be issued:\n")
	b.WriteString("• Customer medical examination\n")
	b.WriteString("• Additional financial documentation\n")
	b.WriteString("• Underwriter approval\n")
	b.WriteString("• Extended processing time (7-14 working days)\n\n")
	fmt.Fprintf(&b, "Offer coverage up to %s if the customer needs instant approval.", Rupees(a.Limit))
	return b.String()
}

// AppendAlert adds the alert block after text, or returns text unchanged.
func AppendAlert(text string, alert *UnderwritingAlert) string {
	if alert == nil {
		return text
	}
	return strings.TrimRight(text, "\n") + "\n\n" + alert.Render()
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
