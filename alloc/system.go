package alloc

// SystemID identifies an Autonomous System requesting an allocation.
type SystemID string

// System is a requester: an Autonomous System identified by ID, with the
// home prefix its compatibility with candidate blocks is scored against.
// Immutable once constructed.
type System struct {
	ID   SystemID
	Home Block
}
