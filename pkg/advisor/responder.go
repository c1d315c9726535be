package advisor

import (
	"strings"

	"abhi-advisor-be/internal/entity"
)

// ResponseContext is everything the rule-based responder may look at.
type ResponseContext struct {
	Message         string
	CustomerContext string
	Advisor         *entity.User
	Exemptions      []*entity.UserExemption
}

func (rc ResponseContext) hasCustomer() bool {
	return rc.CustomerContext != ""
}

// Rule pairs a topic predicate with its template. Match receives the
// lower-cased message.
type Rule struct {
	Name   string
	Match  func(message string) bool
	Render func(rc ResponseContext) string
}

// Responder answers without the language model. Rules are tried in order
// and the first match wins; the default rule always matches.
type Responder struct {
	rules       []Rule
	defaultRule Rule
}

func NewResponder() *Responder {
	return &Responder{
		rules:       DefaultRules(),
		defaultRule: Rule{Name: "overview", Match: func(string) bool { return true }, Render: renderOverview},
	}
}

// DefaultRules returns the topic rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "health", Match: keywords("health", "medical"), Render: renderHealth},
		{Name: "term", Match: keywords("term", "life cover", "life insurance"), Render: renderTerm},
		{Name: "comparison", Match: keywords("compare", "comparison", "competition"), Render: renderComparison},
		{Name: "premium", Match: keywords("premium", "calculate", "quote"), Render: renderPremium},
	}
}

func keywords(words ...string) func(string) bool {
	return func(message string) bool {
		return containsAny(message, words...)
	}
}

// Select returns the rule that handles the message.
func (r *Responder) Select(message string) Rule {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		if rule.Match(lower) {
			return rule
		}
	}
	return r.defaultRule
}

// Respond renders the matched template and appends an underwriting alert
// when the message asks for more than the advisor may sell unassisted.
func (r *Responder) Respond(rc ResponseContext) string {
	text := r.Select(rc.Message).Render(rc)
	return AppendAlert(text, CheckUnderwriting(rc.Message, rc.Advisor, rc.Exemptions))
}

func personalize(rc ResponseContext, withCustomer, without string) string {
	if rc.hasCustomer() {
		return withCustomer
	}
	return without
}

func renderHealth(rc ResponseContext) string {
	return `**🏥 Health Insurance Recommendations**

Based on our analysis, here are our top Aditya Birla Health Insurance plans:

**Activ Health Enhanced** - Our flagship plan
• Coverage: ₹3L to ₹1Cr (Family Floater)
• Premium: Starting ₹5,500/year
• Key Benefits: No room rent capping, global coverage, wellness rewards
• Claim Settlement: 98.2% (Industry leading)

**Activ Care** - Comprehensive protection
• Coverage: ₹2L to ₹1Cr
• Premium: Starting ₹3,800/year
• Network: 6,500+ cashless hospitals
• Special: Maternity coverage from day 1

**Why choose Aditya Birla Health Insurance?**
✅ 98.2% claim settlement ratio (industry best)
✅ No room rent capping or sub-limits
✅ 6,500+ cashless hospitals
✅ Global coverage for emergencies
✅ Wellness rewards program

` + personalize(rc,
		"I can provide personalized recommendations based on the selected customer profile.",
		"Would you like me to create a personalized recommendation for a specific customer?") + `

Shall I generate a detailed quote?`
}

func renderTerm(rc ResponseContext) string {
	return `**🛡️ Term Insurance Solutions**

Our term insurance plans offer maximum life coverage at affordable premiums:

**Protect@Ease** - Premium term plan
• Coverage: ₹25L to ₹10Cr
• Features: Return of premium option, waiver of premium rider
• Claim Settlement: 98.2% success rate
• Tax Benefits: Up to ₹1.5L under 80C + ₹10L under 10(10D)

**Protect@Active** - Value-focused term plan
• Coverage: ₹50L to ₹5Cr
• Features: Increasing cover option, critical illness rider
• Ideal for: Young professionals and families

**Why choose Aditya Birla Term Insurance?**
✅ 10-15% lower premiums than competitors
✅ 98.2% claim settlement ratio
✅ Flexible premium payment options
✅ Multiple rider options available
✅ Quick claim processing (24-48 hours)

` + personalize(rc,
		"I can calculate specific premium recommendations based on the customer profile.",
		"Share the customer's age and income and I can size the right cover.") + `

Would you like me to calculate premium for a specific coverage amount?`
}

func renderComparison(rc ResponseContext) string {
	return `**⚖️ Aditya Birla vs Competitors**

Here's how we outperform major competitors:

**Claim Settlement Ratio:**
• Aditya Birla: 98.2%
• Industry Average: 85-95%
• LIC: 98.5%
• ICICI Prudential: 97.8%
• HDFC Life: 98.0%

**Premium Competitiveness:**
• 10-20% lower than ICICI, HDFC
• Better features at same price points
• No hidden charges or sub-limits

**Unique Advantages:**
✅ Fastest claim processing (24-48 hours)
✅ 6,500+ cashless hospitals (highest network)
✅ Global coverage for health plans
✅ Wellness rewards program
✅ No room rent capping
✅ Digital-first experience

**Customer Service:**
• 24/7 support
• Dedicated relationship managers
• Mobile app with full functionality
• Paperless policy issuance

` + personalize(rc,
		"I can compare these points against the policies this customer already holds.",
		"Select a customer to compare against the policies they already hold.") + `

Would you like a detailed comparison for a specific policy type?`
}

func renderPremium(rc ResponseContext) string {
	return `**💰 Premium Calculator**

I can help calculate premiums for our various insurance products:

**Sample Premium Calculations:**

**Health Insurance (Family of 4):**
• ₹5L coverage: ₹8,500/year
• ₹10L coverage: ₹12,000/year
• ₹25L coverage: ₹18,000/year

**Term Insurance (Male, 30 years, Non-smoker):**
• ₹50L coverage: ₹6,500/year
• ₹1Cr coverage: ₹10,500/year
• ₹2Cr coverage: ₹18,000/year

**ULIP (Investment + Insurance):**
• ₹50,000 annual investment: ₹5L life cover
• ₹1L annual investment: ₹10L life cover
• Expected returns: 10-12% CAGR

**Factors affecting premium:**
• Age and gender
• Health conditions
• Coverage amount
• Policy term
• Add-on riders

` + personalize(rc,
		"I can provide exact premium calculations based on the customer details.",
		"Please provide customer details for accurate premium calculation.") + `

Would you like a detailed quotation?`
}

func renderOverview(rc ResponseContext) string {
	greeting := "Hello!"
	if rc.Advisor != nil && rc.Advisor.Name != "" {
		greeting = "Hello " + rc.Advisor.Name + "!"
	}
	return greeting + ` I'm ABHi, your AI assistant for Aditya Birla Insurance. I can help you with:

**🎯 Our Insurance Products:**
• **Health Insurance** - Activ Health Enhanced, Activ Care
• **Term Insurance** - Protect@Ease, Protect@Active
• **ULIPs** - Vision LifeIncome Plan
• **Child Plans** - Child Secure Plan
• **Retirement Plans** - Vision Life Pension Plan

**🏆 Why Aditya Birla Insurance?**
✅ 98.2% claim settlement ratio (industry leading)
✅ 6,500+ cashless hospitals
✅ 24-48 hour claim processing
✅ Lower premiums, better benefits
✅ Global coverage and wellness rewards

**💼 How I can assist:**
• Policy recommendations based on customer needs
• Premium calculations and quotes
• Competitive analysis and comparisons
• Claims assistance and guidance

` + personalize(rc,
		"I have access to the customer profile and can provide personalized recommendations.",
		"Please select a customer to get targeted assistance.") + `

How can I help you today? You can ask about specific insurance products, premium calculations, or policy comparisons.`
}
