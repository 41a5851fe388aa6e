package department

import "context"

type DepartmentService interface {
	List(ctx context.Context) ([]DepartmentResponse, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id int64) error
}
