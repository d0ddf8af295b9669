package models

// MutationResult reports the outcome of an UPDATE or DELETE at the
// persistence layer. Update and delete operations return this shape
// rather than the mutated entity.
type MutationResult struct {
	// Affected is the number of rows changed by the statement.
	Affected int64 `json:"affected"`
}
