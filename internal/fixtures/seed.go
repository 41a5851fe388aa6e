package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/employee"
)

func strPtr(s string) *string { return &s }

var sampleFirstNames = []string{
	"Ahmet", "Mehmet", "Ayşe", "Fatma", "Mustafa",
	"Emine", "Ali", "Zeynep", "Hüseyin", "Elif",
}

var sampleLastNames = []string{
	"Yılmaz", "Kaya", "Demir", "Çelik", "Şahin",
	"Yıldız", "Aydın", "Özdemir", "Arslan", "Doğan",
}

var sampleDepartments = []string{
	"Üretim", "Muhasebe", "İnsan Kaynakları", "Satış", "Depo",
}

// Seeder writes development fixtures: the primary owner account, a batch of
// sample employees, and randomized punch history for the last week.
type Seeder struct {
	adminRepo    admin.AdminRepository
	employeeRepo employee.EmployeeRepository
	punchRepo    attendance.PunchRepository
	rng          *rand.Rand
}

func NewSeeder(adminRepo admin.AdminRepository, employeeRepo employee.EmployeeRepository, punchRepo attendance.PunchRepository) *Seeder {
	return &Seeder{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run seeds everything. Safe to call against a database that was seeded
// before: the owner account and employees with taken national ids are left
// alone.
func (s *Seeder) Run(ctx context.Context, ownerEmail, ownerPassword string) error {
	if err := s.SeedOwner(ctx, ownerEmail, ownerPassword); err != nil {
		return err
	}

	employees, err := s.SeedEmployees(ctx)
	if err != nil {
		return err
	}

	if err := s.SeedWeekOfPunches(ctx, employees); err != nil {
		return err
	}

	return s.SeedOvertimeEmployee(ctx)
}

// SeedOwner ensures the primary owner admin exists.
func (s *Seeder) SeedOwner(ctx context.Context, email, password string) error {
	_, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		slog.Info("Owner account already present", "email", email)
		return nil
	}
	if err != admin.ErrAdminNotFound {
		return fmt.Errorf("failed to look up owner account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash owner password: %w", err)
	}

	_, err = s.adminRepo.Create(ctx, admin.Admin{
		Name:         "Owner",
		Email:        email,
		PasswordHash: string(hash),
		Role:         admin.RoleOwner,
		Permissions:  admin.DefaultPermissions(admin.RoleOwner),
	})
	if err != nil {
		return fmt.Errorf("failed to create owner account: %w", err)
	}

	slog.Info("Owner account created", "email", email)
	return nil
}

// SeedEmployees creates ten sample employees with sequential national ids.
// Employees whose national id is already taken are skipped.
func (s *Seeder) SeedEmployees(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee

	for i := 0; i < 10; i++ {
		e := employee.Employee{
			FirstName:  sampleFirstNames[i%len(sampleFirstNames)],
			LastName:   sampleLastNames[i%len(sampleLastNames)],
			Age:        20 + s.rng.Intn(40),
			NationalID: fmt.Sprintf("100000000%02d", i+1),
			Department: sampleDepartments[s.rng.Intn(len(sampleDepartments))],
		}

		created, err := s.employeeRepo.Create(ctx, e)
		if err != nil {
			if err == employee.ErrNationalIDExists {
				slog.Info("Employee already seeded", "national_id", e.NationalID)
				continue
			}
			return nil, fmt.Errorf("failed to seed employee: %w", err)
		}
		employees = append(employees, created)
	}

	slog.Info("Sample employees seeded", "count", len(employees))
	return employees, nil
}

// SeedWeekOfPunches writes seven days of randomized history for each
// employee. Roughly seven in ten days are worked, one in ten is a leave day,
// and the rest stay empty.
func (s *Seeder) SeedWeekOfPunches(ctx context.Context, employees []employee.Employee) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, e := range employees {
		for dayOffset := 1; dayOffset <= 7; dayOffset++ {
			date := today.AddDate(0, 0, -dayOffset)

			switch roll := s.rng.Float64(); {
			case roll < 0.7:
				clockIn := fmt.Sprintf("%02d:%02d:00", 9+s.rng.Intn(3), s.rng.Intn(60))
				clockOut := fmt.Sprintf("%02d:%02d:00", 17+s.rng.Intn(3), s.rng.Intn(60))

				if err := s.createPunch(ctx, e.ID, date, attendance.EventClockIn, &clockIn); err != nil {
					return err
				}
				if err := s.createPunch(ctx, e.ID, date, attendance.EventClockOut, &clockOut); err != nil {
					return err
				}
			case roll < 0.8:
				if err := s.createPunch(ctx, e.ID, date, attendance.EventLeave, nil); err != nil {
					return err
				}
			}
			// otherwise absent: no records at all
		}
	}

	slog.Info("Week of punch history seeded", "employees", len(employees))
	return nil
}

// SeedOvertimeEmployee recreates the dedicated overtime test employee with
// thirty consecutive 09:00-21:00 days, ending yesterday. Deleting the old
// record first cascades its punches away, so reruns start clean.
func (s *Seeder) SeedOvertimeEmployee(ctx context.Context) error {
	const overtimeNationalID = "19900000001"

	existing, err := s.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}
	for _, e := range existing {
		if e.NationalID == overtimeNationalID {
			if err := s.employeeRepo.Delete(ctx, e.ID); err != nil {
				return fmt.Errorf("failed to delete previous overtime employee: %w", err)
			}
			break
		}
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FirstName:  "Mesai",
		LastName:   "Kralı",
		Age:        35,
		NationalID: overtimeNationalID,
		Department: "Üretim",
		FaceData:   strPtr("overtime-test"),
	})
	if err != nil {
		return fmt.Errorf("failed to create overtime employee: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	for dayOffset := 1; dayOffset <= 30; dayOffset++ {
		date := today.AddDate(0, 0, -dayOffset)

		clockIn := "09:00:00"
		clockOut := "21:00:00"
		if err := s.createPunch(ctx, created.ID, date, attendance.EventClockIn, &clockIn); err != nil {
			return err
		}
		if err := s.createPunch(ctx, created.ID, date, attendance.EventClockOut, &clockOut); err != nil {
			return err
		}
	}

	slog.Info("Overtime employee seeded", "employee_id", created.ID)
	return nil
}

func (s *Seeder) createPunch(ctx context.Context, employeeID int64, date time.Time, eventType attendance.EventType, clock *string) error {
	p := attendance.Punch{
		EmployeeID: employeeID,
		Date:       date,
		EventType:  eventType,
	}
	switch eventType {
	case attendance.EventClockIn:
		p.ClockIn = clock
	case attendance.EventClockOut:
		p.ClockOut = clock
	}

	if _, err := s.punchRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("failed to seed punch: %w", err)
	}
	return nil
}
