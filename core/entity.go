package core

// Entity is a unique identifier for a simulation entity
// Entity 0 is reserved as invalid
type Entity uint64

// InvalidEntity represents a non-existent entity
const InvalidEntity Entity = 0
