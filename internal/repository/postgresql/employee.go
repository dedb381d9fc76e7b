package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nology-tech/employee-creator-go/internal/domain/employee"
	"github.com/nology-tech/employee-creator-go/internal/pkg/database"
)

const employeeColumns = `
	id, first_name, middle_name, last_name, email, mobile_number,
	residential_address, contract_type, employment_basis, role,
	start_date, finish_date, ongoing, hours_per_week, thumbnail_url,
	created_at, updated_at`

// Predicate deriving ACTIVE from the finish date; compared date-only so
// an employee finishing today stays active until midnight.
const activePredicate = `(finish_date IS NULL OR finish_date >= CURRENT_DATE)`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.MiddleName, &emp.LastName, &emp.Email,
		&emp.MobileNumber, &emp.ResidentialAddress, &emp.ContractType,
		&emp.EmploymentBasis, &emp.Role, &emp.StartDate, &emp.FinishDate,
		&emp.Ongoing, &emp.HoursPerWeek, &emp.ThumbnailURL,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			first_name, middle_name, last_name, email, mobile_number,
			residential_address, contract_type, employment_basis, role,
			start_date, finish_date, ongoing, hours_per_week, thumbnail_url
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13, $14
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.FirstName, newEmployee.MiddleName, newEmployee.LastName,
		newEmployee.Email, newEmployee.MobileNumber, newEmployee.ResidentialAddress,
		newEmployee.ContractType, newEmployee.EmploymentBasis, newEmployee.Role,
		newEmployee.StartDate, newEmployee.FinishDate, newEmployee.Ongoing,
		newEmployee.HoursPerWeek, newEmployee.ThumbnailURL,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return found, nil
}

// GetAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY first_name ASC, last_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, pageQuery employee.PageQuery) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	orderBy, err := sortClause(pageQuery.SortBy, pageQuery.SortDirection)
	if err != nil {
		return nil, 0, err
	}

	offset := pageQuery.Page * pageQuery.Size
	query := fmt.Sprintf(`SELECT %s FROM employees ORDER BY %s LIMIT $1 OFFSET $2`, employeeColumns, orderBy)

	rows, err := q.Query(ctx, query, pageQuery.Size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// Search implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Search(ctx context.Context, filter employee.SearchFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE conditions from the optional filters
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.ContractType != nil && *filter.ContractType != "" {
		conditions = append(conditions, fmt.Sprintf("contract_type = $%d", argIdx))
		args = append(args, *filter.ContractType)
		argIdx++
	}
	if filter.EmploymentBasis != nil && *filter.EmploymentBasis != "" {
		conditions = append(conditions, fmt.Sprintf("employment_basis = $%d", argIdx))
		args = append(args, *filter.EmploymentBasis)
		argIdx++
	}
	if filter.Ongoing != nil {
		if *filter.Ongoing {
			conditions = append(conditions, activePredicate)
		} else {
			conditions = append(conditions, "NOT "+activePredicate)
		}
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	orderBy, err := sortClause(filter.SortBy, filter.SortDirection)
	if err != nil {
		return nil, 0, err
	}

	offset := filter.Page * filter.Size
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		employeeColumns, whereClause, orderBy, argIdx, argIdx+1)
	args = append(args, filter.Size, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search employees: %w", err)
	}
	defer rows.Close()

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	updates := make(map[string]interface{})

	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.MiddleName != nil {
		if strings.TrimSpace(*req.MiddleName) == "" {
			updates["middle_name"] = nil
		} else {
			updates["middle_name"] = strings.TrimSpace(*req.MiddleName)
		}
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		updates["email"] = strings.TrimSpace(*req.Email)
	}
	if req.MobileNumber != nil {
		updates["mobile_number"] = strings.TrimSpace(*req.MobileNumber)
	}
	if req.ResidentialAddress != nil {
		updates["residential_address"] = strings.TrimSpace(*req.ResidentialAddress)
	}
	if req.ContractType != nil {
		updates["contract_type"] = *req.ContractType
	}
	if req.EmploymentBasis != nil {
		updates["employment_basis"] = *req.EmploymentBasis
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid start date %q: %w", *req.StartDate, err)
		}
		updates["start_date"] = parsed
	}
	if req.FinishDate != nil {
		if *req.FinishDate == "" {
			updates["finish_date"] = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *req.FinishDate)
			if err != nil {
				return employee.Employee{}, fmt.Errorf("invalid finish date %q: %w", *req.FinishDate, err)
			}
			updates["finish_date"] = parsed
		}
	}
	if req.Ongoing != nil {
		updates["ongoing"] = *req.Ongoing
		if *req.Ongoing {
			// ongoing employment never carries a finish date
			updates["finish_date"] = nil
		}
	}
	if req.HoursPerWeek != nil {
		updates["hours_per_week"] = *req.HoursPerWeek
	}
	if req.ThumbnailURL != nil {
		if *req.ThumbnailURL == "" {
			updates["thumbnail_url"] = nil
		} else {
			updates["thumbnail_url"] = *req.ThumbnailURL
		}
	}

	if len(updates) == 0 {
		return e.GetByID(ctx, id)
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), i, employeeColumns)
	args = append(args, id)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee %d: %w", id, err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID int64
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND id <> $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// Count implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Validate sort column against a whitelist; the API exposes camelCase
// field names, the table uses snake_case.
var validSortColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"startDate": "start_date",
	"createdAt": "created_at",
}

func sortClause(sortBy, sortDirection string) (string, error) {
	column := "first_name"
	if sortBy != "" {
		mapped, ok := validSortColumns[sortBy]
		if !ok {
			return "", fmt.Errorf("%w: %q", employee.ErrInvalidSortField, sortBy)
		}
		column = mapped
	}

	order := "ASC"
	if strings.EqualFold(sortDirection, "desc") {
		order = "DESC"
	}
	return column + " " + order, nil
}
