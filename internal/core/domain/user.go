package domain

import "time"

// User is a staff member who can ring up sales, receive goods and settle balances.
type User struct {
	UserID    string     `json:"userID"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}

// UnknownUserLabel is shown for actors whose id cannot be resolved.
const UnknownUserLabel = "Unknown user"

// ActorDirectory resolves user ids to display names for report attribution.
type ActorDirectory struct {
	Names        map[string]string
	UnknownLabel string
}

// Resolve returns the display name for id, or the unknown label. It never fails.
func (d ActorDirectory) Resolve(id string) string {
	if name, ok := d.Names[id]; ok && name != "" {
		return name
	}
	if d.UnknownLabel != "" {
		return d.UnknownLabel
	}
	return UnknownUserLabel
}
