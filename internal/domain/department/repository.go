package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Delete(ctx context.Context, id int64) error
}
