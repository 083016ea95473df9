package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// StockInsuficienteError detalla una salida rechazada por falta de existencias:
// cuánto hay disponible y cuánto se solicitó. errors.Is lo empareja con
// ErrInsufficientStock para el mapeo HTTP.
type StockInsuficienteError struct {
	Disponible decimal.Decimal
	Solicitado decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente. Stock disponible: %s, solicitado: %s",
		e.Disponible.String(), e.Solicitado.String())
}

func (e *StockInsuficienteError) Is(target error) bool {
	return target == ErrInsufficientStock
}
