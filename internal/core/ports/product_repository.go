package ports

import "context"

// ProductRepository defines the catalog lookup contract used while
// validating order lines that reference catalog products.
type ProductRepository interface {
	// FindExistingIDs returns the subset of ids that exist in the catalog.
	// The caller compares the result against its input to detect unknown
	// product references.
	FindExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
