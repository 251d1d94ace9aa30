package types

// EntityID identifies an entity in the ECS world. IDs are never reused within a world.
type EntityID uint64
