package models

import (
	"errors"
	"fmt"
)

// ErrNotFound se devuelve cuando una búsqueda por clave no encuentra fila.
var ErrNotFound = errors.New("registro no encontrado")

// ValidationError describe un campo de entrada ausente o mal formado.
// Se detecta antes de tocar la base de datos.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo '%s': %s", e.Field, e.Reason)
}

// StorageError envuelve cualquier fallo de la base de datos (conexión,
// violación de clave foránea, etc). No se reintenta.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "error de almacenamiento: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
