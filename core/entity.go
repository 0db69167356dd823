package core

// Entity is a world-unique identifier
// Ids are allocated monotonically and never reused, a stale id never aliases a live entity
type Entity uint64

// NoEntity is the zero id, never allocated
const NoEntity Entity = 0
