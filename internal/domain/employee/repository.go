package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	List(ctx context.Context, query PageQuery) ([]Employee, int64, error)
	Search(ctx context.Context, filter SearchFilter) ([]Employee, int64, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
