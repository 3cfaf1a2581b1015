// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности в ECS.
// Ноль зарезервирован и означает "нет сущности".
type EntityID uint64

// None — отсутствующая сущность (например, у корня иерархии нет родителя).
const None EntityID = 0
