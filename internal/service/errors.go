package service

import "errors"

// Errores de negocio propios de la capa de servicio. Los de persistencia
// (not found, stock insuficiente) viven en repository y se propagan tal cual.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("illegal order status transition")
)
