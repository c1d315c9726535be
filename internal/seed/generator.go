package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"abhi-advisor-be/internal/entity"

	"github.com/shopspring/decimal"
)

// DefaultGeneratorSeed keeps the demo dataset identical across runs.
const DefaultGeneratorSeed int64 = 2024

var (
	generatedNames = []string{
		"Rajesh Kumar", "Priya Sharma", "Amit Patel", "Sneha Gupta", "Vikram Singh",
		"Anjali Mehta", "Ravi Agarwal", "Pooja Jain", "Suresh Reddy", "Kavita Iyer",
		"Manoj Verma", "Sunita Rao", "Ashok Tiwari", "Meera Nair", "Deepak Joshi",
		"Ritu Khanna", "Sanjay Malhotra", "Neha Agrawal", "Ramesh Choudhary", "Anita Bansal",
	}
	generatedCities = []string{
		"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Pune",
		"Ahmedabad", "Jaipur", "Lucknow", "Kanpur", "Nagpur", "Indore", "Thane",
		"Bhopal", "Visakhapatnam", "Pimpri-Chinchwad", "Patna", "Vadodara", "Ghaziabad",
	}
	generatedProfessions = []string{
		"Software Engineer", "Marketing Manager", "Business Owner", "Doctor", "Teacher",
		"Accountant", "Sales Manager", "Consultant", "Banker", "Engineer", "Architect",
		"Lawyer", "CA", "Designer", "Project Manager", "Analyst", "Executive", "Supervisor",
	}
	otherProviders  = []string{"ICICI Prudential", "HDFC Life", "LIC", "SBI Life", "Star Health", "Max Life"}
	policyTypes     = []string{"Health", "Term", "ULIP", "Endowment", "Whole Life"}
	riskAppetites   = []string{"Low", "Medium", "High"}
	leadSources     = []string{"Website", "Referral", "Branch", "Social Media", "Cold Call"}
	ownProviderName = "Aditya Birla"
)

// GenerateCustomers builds count demo customers with ids cust-001 upwards.
// The same seed and reference time always yield the same customers.
func GenerateCustomers(count int, seed int64, now time.Time) []*entity.Customer {
	r := rand.New(rand.NewSource(seed))
	customers := make([]*entity.Customer, 0, count)

	for i := 0; i < count; i++ {
		age := 25 + r.Intn(40)
		income := 300000 + r.Intn(2000000)
		baseName := generatedNames[i%len(generatedNames)]

		policies := []entity.ExistingPolicy{{
			Provider: ownProviderName,
			Type:     pick(r, policyTypes),
			Premium:  decimal.NewFromInt(int64(8000 + r.Intn(40000))),
			Coverage: fmt.Sprintf("%d", 500000+r.Intn(4500000)),
			Term:     fmt.Sprintf("%dyrs", 10+r.Intn(25)),
		}}
		for j := 0; j < 2; j++ {
			policies = append(policies, entity.ExistingPolicy{
				Provider: pick(r, otherProviders),
				Type:     pick(r, policyTypes),
				Premium:  decimal.NewFromInt(int64(5000 + r.Intn(35000))),
				Coverage: fmt.Sprintf("%d", 300000+r.Intn(4700000)),
				Term:     fmt.Sprintf("%dyrs", 5+r.Intn(30)),
			})
		}

		name, emailSuffix := baseName, ""
		if i > 19 {
			name = fmt.Sprintf("%s %d", baseName, i/20)
			emailSuffix = fmt.Sprintf("%d", i)
		}

		maritalStatus := "Single"
		if age > 28 && r.Float64() > 0.3 {
			maritalStatus = "Married"
		}
		gender := "F"
		if i%2 == 0 {
			gender = "M"
		}

		secondGoal := "Retirement Planning"
		if r.Float64() > 0.5 {
			secondGoal = "Child Education"
		}
		thirdGoal := "Wealth Creation"
		if r.Float64() > 0.7 {
			thirdGoal = "Tax Saving"
		}

		health := entity.HealthConditions{
			"diabetes":      r.Float64() > 0.9,
			"heart_disease": r.Float64() > 0.95,
			"hypertension":  r.Float64() > 0.85,
			"smoker":        r.Float64() > 0.8,
		}

		lifestyle := "Non-smoker, Regular Exercise"
		if r.Float64() > 0.8 {
			lifestyle = "Smoker, Occasional Exercise"
		}

		lastLogin := now.Add(-time.Duration(r.Intn(30)) * 24 * time.Hour)
		phoneDigits := fmt.Sprintf("%d", 43210+i)

		customers = append(customers, &entity.Customer{
			Id:               fmt.Sprintf("cust-%03d", i+1),
			Name:             name,
			Age:              age,
			Gender:           gender,
			MaritalStatus:    maritalStatus,
			Profession:       pick(r, generatedProfessions),
			IncomeBracket:    incomeBracket(income),
			AnnualIncome:     decimal.NewFromInt(int64(income)),
			City:             pick(r, generatedCities),
			State:            "India",
			DependentsCount:  r.Intn(4),
			HealthConditions: health,
			FinancialGoals:   []string{"Term Insurance", "Health Insurance", secondGoal, thirdGoal},
			RiskAppetite:     pick(r, riskAppetites),
			Lifestyle:        lifestyle,
			ExistingPolicies: policies,
			LeadSource:       pick(r, leadSources),
			LastLogin:        &lastLogin,
			Phone:            "+91-98765" + phoneDigits[len(phoneDigits)-5:],
			Email:            strings.Replace(strings.ToLower(baseName), " ", ".", 1) + emailSuffix + "@email.com",
		})
	}
	return customers
}

func incomeBracket(income int) string {
	switch {
	case income < 500000:
		return "<5L"
	case income < 1000000:
		return "5-10L"
	case income < 2500000:
		return "10-25L"
	default:
		return ">25L"
	}
}

func pick(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}
