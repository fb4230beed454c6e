package entity

import "time"

// Roles válidos para User. Cualquier otro valor solicitado se fuerza a employee.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// ValidRole indica si el rol es uno de los reconocidos por el sistema.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

// User representa una cuenta del sistema. Se crea en el registro y no se
// actualiza ni elimina por ninguna operación expuesta.
type User struct {
	ID           string
	Name         string
	Email        string    // único, sensible a mayúsculas tal como se almacena
	PasswordHash string    // bcrypt hash, nunca plano en dominio después de persistir
	Role         string    // admin, employee
	CreatedAt    time.Time
}
