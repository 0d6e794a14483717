package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	MiddleName   *string
	LastName     string
	Position     *string
	Department   *string
	BasicSalary  *decimal.Decimal
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// FullName joins the name parts, skipping an absent middle name.
func (e Employee) FullName() string {
	parts := []string{e.FirstName}
	if e.MiddleName != nil && *e.MiddleName != "" {
		parts = append(parts, *e.MiddleName)
	}
	parts = append(parts, e.LastName)
	return strings.Join(parts, " ")
}
