package admin

import "errors"

var (
	ErrAdminNotFound           = errors.New("admin not found")
	ErrAdminEmailExists        = errors.New("email already registered")
	ErrOwnerRoleNotAssignable  = errors.New("the owner role cannot be assigned")
	ErrOwnerAccountProtected   = errors.New("the primary owner account cannot be modified or deleted")
	ErrOwnerAccessRequired     = errors.New("owner access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrUnknownPermission       = errors.New("unknown permission")
	ErrUnknownRole             = errors.New("unknown role")
)
