package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingFields      = errors.New("faltan campos requeridos")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAdminRequired      = errors.New("se requiere acceso de administrador")
	ErrEmptyReason        = errors.New("el motivo no puede estar vacío")
	ErrInvalidDateFormat  = errors.New("formato de fecha inválido, use YYYY-MM-DD")
	ErrEndBeforeStart     = errors.New("la fecha final debe ser posterior a la inicial")
	ErrStartInPast        = errors.New("la fecha inicial no puede estar en el pasado")
	ErrInvalidStatus      = errors.New("estado inválido")
	ErrLeaveNotFound      = errors.New("solicitud de licencia no encontrada")
)
