package employee

import "time"

type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	Age        int
	NationalID string
	Department string
	FaceData   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
