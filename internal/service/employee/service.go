package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/nology-tech/employee-creator-go/internal/domain/employee"
	"github.com/nology-tech/employee-creator-go/internal/pkg/sse"
)

type EmployeeServiceImpl struct {
	repo    employee.EmployeeRepository
	hub     *sse.Hub
	logger  *slog.Logger
	recency employee.RecencyWindows
}

func NewEmployeeService(repo employee.EmployeeRepository, hub *sse.Hub, logger *slog.Logger, recency employee.RecencyWindows) employee.EmployeeService {
	if recency == (employee.RecencyWindows{}) {
		recency = employee.DefaultRecencyWindows()
	}
	return &EmployeeServiceImpl{
		repo:    repo,
		hub:     hub,
		logger:  logger,
		recency: recency,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email, 0)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	newEmployee, err := entityFromCreate(req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.repo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.InfoContext(ctx, "employee created",
		slog.Int64("employee_id", created.ID),
		slog.String("email", created.Email))
	s.hub.Broadcast(sse.Event{Action: sse.ActionCreated, EmployeeID: created.ID, At: time.Now()})

	return created.ToResponse(time.Now(), s.recency), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return found.ToResponse(time.Now(), s.recency), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.repo.ExistsByEmail(ctx, *req.Email, id)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	if err := validateMergedDates(current, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.InfoContext(ctx, "employee updated", slog.Int64("employee_id", id))
	s.hub.Broadcast(sse.Event{Action: sse.ActionUpdated, EmployeeID: id, At: time.Now()})

	return updated.ToResponse(time.Now(), s.recency), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "employee deleted", slog.Int64("employee_id", id))
	s.hub.Broadcast(sse.Event{Action: sse.ActionDeleted, EmployeeID: id, At: time.Now()})
	return nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, emp.ToResponse(now, s.recency))
	}
	return responses, nil
}

// ListEmployeePage implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployeePage(ctx context.Context, query employee.PageQuery) (employee.Page, error) {
	employees, total, err := s.repo.List(ctx, query)
	if err != nil {
		return employee.Page{}, err
	}
	return employee.NewPage(employees, total, query.Page, query.Size, time.Now(), s.recency), nil
}

// SearchEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, filter employee.SearchFilter) (employee.Page, error) {
	employees, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return employee.Page{}, err
	}
	return employee.NewPage(employees, total, filter.Page, filter.Size, time.Now(), s.recency), nil
}

func entityFromCreate(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return employee.Employee{}, err
	}

	newEmployee := employee.Employee{
		FirstName:          req.FirstName,
		MiddleName:         req.MiddleName,
		LastName:           req.LastName,
		Email:              req.Email,
		MobileNumber:       req.MobileNumber,
		ResidentialAddress: req.ResidentialAddress,
		ContractType:       employee.ContractType(req.ContractType),
		EmploymentBasis:    employee.EmploymentBasis(req.EmploymentBasis),
		Role:               employee.Role(req.Role),
		StartDate:          startDate,
		Ongoing:            req.Ongoing,
		HoursPerWeek:       req.HoursPerWeek,
		ThumbnailURL:       req.ThumbnailURL,
	}

	if req.FinishDate != nil {
		finishDate, err := time.Parse("2006-01-02", *req.FinishDate)
		if err != nil {
			return employee.Employee{}, err
		}
		newEmployee.FinishDate = &finishDate
	}
	return newEmployee, nil
}

// validateMergedDates checks the date ordering that only becomes
// decidable once the partial update is merged over the stored record.
func validateMergedDates(current employee.Employee, req employee.UpdateEmployeeRequest) error {
	startDate := current.StartDate
	if req.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return err
		}
		startDate = parsed
	}

	finishDate := current.FinishDate
	if req.FinishDate != nil {
		if *req.FinishDate == "" {
			finishDate = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *req.FinishDate)
			if err != nil {
				return err
			}
			finishDate = &parsed
		}
	}

	ongoing := current.Ongoing
	if req.Ongoing != nil {
		ongoing = *req.Ongoing
	}

	if ongoing {
		return nil
	}
	if finishDate != nil && !finishDate.After(startDate) {
		return employee.ErrFinishBeforeStart
	}
	return nil
}
