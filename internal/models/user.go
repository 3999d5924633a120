package models

import "time"

// User is a staff member row. Only the id and display name are read by this service.
type User struct {
	UserID string `db:"user_id"`
	Name   string `db:"name"`
	Role   string `db:"role"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
