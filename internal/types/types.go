// internal/types/types.go
package types

// EntityID — идентификатор сущности в мире. Ноль никогда не выдаётся.
type EntityID uint64
