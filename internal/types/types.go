// internal/types/types.go
package types

// EntityID identifies an entity across all component stores.
type EntityID uint64
