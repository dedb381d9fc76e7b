package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id int64) error
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	ListEmployeePage(ctx context.Context, query PageQuery) (Page, error)
	SearchEmployees(ctx context.Context, filter SearchFilter) (Page, error)
}
