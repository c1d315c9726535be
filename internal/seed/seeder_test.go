package seed

import (
	"context"
	"testing"
	"time"

	"abhi-advisor-be/internal/model"
	"abhi-advisor-be/internal/repository/unitofwork"
	"abhi-advisor-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	assert.Equal(t, "sales.adv001", c.Advisor.Username)
	assert.Len(t, c.Advisor.Exemptions, 3)
	assert.Len(t, c.Policies, 5)
	assert.Len(t, c.Competitors, 3)
	require.Len(t, c.Customers, 7)
	assert.Equal(t, "cust-101", c.Customers[0].Id)
	assert.Equal(t, "cust-107", c.Customers[6].Id)
}

func TestParseCatalogRejectsMissingAdvisor(t *testing.T) {
	_, err := ParseCatalog([]byte("policies: []\n"))
	assert.Error(t, err)
}

func TestGenerateCustomersIsDeterministic(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := GenerateCustomers(100, DefaultGeneratorSeed, now)
	b := GenerateCustomers(100, DefaultGeneratorSeed, now)

	require.Len(t, a, 100)
	assert.Equal(t, a, b)
	assert.Equal(t, "cust-001", a[0].Id)
	assert.Equal(t, "cust-100", a[99].Id)
	assert.Equal(t, "Rajesh Kumar", a[0].Name)
	assert.Equal(t, "Rajesh Kumar 1", a[20].Name)
	assert.Equal(t, "rajesh.kumar20@email.com", a[20].Email)
	assert.Equal(t, "+91-9876543210", a[0].Phone)

	for _, c := range a {
		assert.GreaterOrEqual(t, c.Age, 25)
		assert.Less(t, c.Age, 65)
		require.Len(t, c.ExistingPolicies, 3)
		assert.Equal(t, "Aditya Birla", c.ExistingPolicies[0].Provider)
	}
}

func TestSeederIsIdempotent(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	seeder := NewSeeder(unitofwork.NewRepositoryFactory(db, nil), catalog, nil)
	ctx := context.Background()

	first, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Users)
	assert.Equal(t, 3, first.Exemptions)
	assert.Equal(t, 5, first.Policies)
	assert.Equal(t, 3, first.Competitors)
	assert.Equal(t, 107, first.Customers)
	assert.Zero(t, first.Skipped)

	second, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Users+second.Exemptions+second.Policies+second.Competitors+second.Customers)
	assert.Equal(t, 1+5+3+107, second.Skipped)

	var customers int64
	require.NoError(t, db.Model(&model.Customer{}).Count(&customers).Error)
	assert.EqualValues(t, 107, customers)

	var user model.User
	require.NoError(t, db.Where("username = ?", "sales.adv001").First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("abhi2024")))
	assert.Equal(t, "level-2", user.Level)
}
