package advisor

import (
	"fmt"
	"strings"

	"abhi-advisor-be/internal/entity"
)

const validTillLayout = "2 Jan 2006"

// BuildAdvisorContext renders the advisor identity, their exemption limits
// and the instructions for applying them. A nil advisor yields "".
func BuildAdvisorContext(a *entity.User, exemptions []*entity.UserExemption) string {
	if a == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Sales Advisor Context:\n")
	writeField(&b, "Name", a.Name)
	writeField(&b, "Username", a.Username)
	writeField(&b, "Role", a.Role)
	writeField(&b, "Certification Level", a.Level)

	if len(exemptions) > 0 {
		b.WriteString("\nUnderwriting Exemption Limits:\n")
		for _, e := range exemptions {
			if e == nil {
				continue
			}
			fmt.Fprintf(&b, "- %s: %s (%s, valid till %s)\n",
				e.ProductType,
				Rupees(e.ExemptionLimit),
				e.CertificationType,
				e.ValidTill.Format(validTillLayout))
		}
	}

	b.WriteString("\nInstructions for this advisor:\n")
	b.WriteString("- Policies with coverage within the advisor's exemption limits can be approved instantly without medical underwriting.\n")
	b.WriteString("- Coverage above a limit requires full underwriting: customer medical examination, financial documentation and underwriter approval, taking 7-14 working days.\n")
	b.WriteString("- When a request exceeds a limit, say so clearly and suggest a coverage amount within the limit as an alternative.\n")
	fmt.Fprintf(&b, "- Address the advisor by name (%s) in every response.", a.Name)

	return b.String()
}
