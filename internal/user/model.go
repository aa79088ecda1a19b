package user

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleSeller Role = "SELLER"
	RoleWaiter Role = "WAITER"
)

var roleLabels = map[Role]string{
	RoleSeller: "Vendedor",
	RoleWaiter: "Mesero",
}

var rolePermissions = map[Role][]string{
	RoleSeller: {"Crear comandas", "Gestionar compras", "Administrar clientes", "Ver historial", "Ver informes"},
	RoleWaiter: {"Crear comandas", "Modificar historial de ventas"},
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleLabels[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

func (r Role) Label() string {
	return roleLabels[r]
}

// Permissions lists what staff with role r may do. Unknown roles have none.
func Permissions(r Role) []string {
	return append([]string(nil), rolePermissions[r]...)
}

// User is a staff account. PasswordHash is never serialised.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Phone        *string   `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserInput struct {
	Username        string
	Email           string
	FullName        string
	Phone           *string
	Role            Role
	Password        string
	ConfirmPassword string
}
