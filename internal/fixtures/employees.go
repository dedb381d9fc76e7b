package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/nology-tech/employee-creator-go/internal/domain/employee"
)

const seedCount = 30

var firstNames = []string{
	"Olivia", "Noah", "Amelia", "Jack", "Charlotte", "William", "Mia",
	"Oliver", "Grace", "Henry", "Isla", "Leo", "Ruby", "Thomas", "Chloe",
	"James", "Sophie", "Lucas", "Zoe", "Ethan",
}

var lastNames = []string{
	"Smith", "Jones", "Williams", "Brown", "Wilson", "Taylor", "Nguyen",
	"Johnson", "Martin", "White", "Anderson", "Walker", "Thompson", "Lee",
	"Harris", "Ryan", "Robinson", "Kelly", "King", "Davis",
}

var streetNames = []string{
	"George Street", "Elizabeth Street", "Victoria Road", "Station Street",
	"Church Street", "High Street", "King Street", "Park Avenue",
}

var suburbs = []string{
	"Sydney NSW 2000", "Melbourne VIC 3000", "Brisbane QLD 4000",
	"Perth WA 6000", "Adelaide SA 5000", "Hobart TAS 7000",
	"Canberra ACT 2600", "Newcastle NSW 2300", "Geelong VIC 3220",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "company.com.au"}

// Seeder fills an empty database with generated employee records for
// local development. A fixed random seed keeps repeated runs identical.
type Seeder struct {
	repo   employee.EmployeeRepository
	logger *slog.Logger
	rng    *rand.Rand
}

func NewSeeder(repo employee.EmployeeRepository, logger *slog.Logger) *Seeder {
	return &Seeder{
		repo:   repo,
		logger: logger,
		rng:    rand.New(rand.NewSource(20240301)),
	}
}

// SeedEmployees inserts the fixture records. It is a no-op when the
// table already holds data, so restarts never duplicate the roster.
func (s *Seeder) SeedEmployees(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check employee count: %w", err)
	}
	if count > 0 {
		s.logger.InfoContext(ctx, "database already contains employees, skipping seed",
			slog.Int64("count", count))
		return nil
	}

	s.logger.InfoContext(ctx, "seeding employee records", slog.Int("count", seedCount))
	for i := 0; i < seedCount; i++ {
		emp := s.fakeEmployee(i)
		if _, err := s.repo.Create(ctx, emp); err != nil {
			return fmt.Errorf("failed to seed employee %s %s: %w", emp.FirstName, emp.LastName, err)
		}
	}

	s.logger.InfoContext(ctx, "database seeding completed")
	return nil
}

func (s *Seeder) fakeEmployee(n int) employee.Employee {
	firstName := firstNames[s.rng.Intn(len(firstNames))]
	lastName := lastNames[s.rng.Intn(len(lastNames))]

	emp := employee.Employee{
		FirstName:          firstName,
		LastName:           lastName,
		Email:              fmt.Sprintf("%s.%s%d@%s", strings.ToLower(firstName), strings.ToLower(lastName), n, emailDomains[s.rng.Intn(len(emailDomains))]),
		MobileNumber:       fmt.Sprintf("04%08d", s.rng.Intn(100_000_000)),
		ResidentialAddress: fmt.Sprintf("%d %s, %s", 1+s.rng.Intn(999), streetNames[s.rng.Intn(len(streetNames))], suburbs[s.rng.Intn(len(suburbs))]),
	}

	if s.rng.Float64() < 0.3 {
		middle := firstNames[s.rng.Intn(len(firstNames))]
		emp.MiddleName = &middle
	}
	if s.rng.Float64() < 0.4 {
		thumbnail := fmt.Sprintf("https://i.pravatar.cc/150?u=%s.%s%d", strings.ToLower(firstName), strings.ToLower(lastName), n)
		emp.ThumbnailURL = &thumbnail
	}

	if s.rng.Intn(2) == 0 {
		emp.ContractType = employee.ContractTypePermanent
	} else {
		emp.ContractType = employee.ContractTypeContract
	}
	if s.rng.Intn(2) == 0 {
		emp.EmploymentBasis = employee.EmploymentBasisFullTime
	} else {
		emp.EmploymentBasis = employee.EmploymentBasisPartTime
	}

	// Start between five years ago and one year ago
	daysAgo := 365 + s.rng.Intn(365*4)
	emp.StartDate = truncateToDay(time.Now().AddDate(0, 0, -daysAgo))

	// 85% of records represent ongoing employment
	emp.Ongoing = s.rng.Float64() < 0.85
	if !emp.Ongoing {
		elapsed := int(time.Since(emp.StartDate).Hours() / 24)
		if elapsed > 1 {
			finish := emp.StartDate.AddDate(0, 0, 1+s.rng.Intn(elapsed-1))
			emp.FinishDate = &finish
		}
	}

	var hours int
	if emp.EmploymentBasis == employee.EmploymentBasisFullTime {
		hours = 35 + s.rng.Intn(6)
	} else {
		hours = 15 + s.rng.Intn(21)
	}
	emp.HoursPerWeek = &hours

	emp.Role = pickRole(s.rng.Float64())
	return emp
}

// pickRole mirrors a realistic company distribution, mostly EMPLOYEE
// with a thin management layer on top.
func pickRole(chance float64) employee.Role {
	switch {
	case chance < 0.03:
		return employee.RoleAdmin
	case chance < 0.10:
		return employee.RoleHR
	case chance < 0.25:
		return employee.RoleManager
	case chance < 0.80:
		return employee.RoleEmployee
	case chance < 0.93:
		return employee.RoleIntern
	default:
		return employee.RoleContractor
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
