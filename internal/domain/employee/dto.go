package employee

import (
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Age        int     `json:"age"`
	NationalID string  `json:"national_id"`
	Department string  `json:"department"`
	FaceData   *string `json:"face_data"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if r.Age < 0 || r.Age > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "age",
			Message: "age must be between 0 and 150",
		})
	}

	if !validator.IsValidNationalID(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id must be an 11-digit number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest replaces every mutable field, matching create.
type UpdateEmployeeRequest = CreateEmployeeRequest

type EmployeeResponse struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Age        int     `json:"age"`
	NationalID string  `json:"national_id"`
	Department string  `json:"department"`
	FaceData   *string `json:"face_data,omitempty"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Age:        e.Age,
		NationalID: e.NationalID,
		Department: e.Department,
		FaceData:   e.FaceData,
	}
}
