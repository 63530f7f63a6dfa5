package curvegroup

import "context"

// Storage keeps finalized curve group definitions.
type Storage interface {
	Save(ctx context.Context, def *Definition) error
	// Load fails with commerr.ErrNotFound for unknown groups.
	Load(ctx context.Context, name GroupName) (*Definition, error)
	List(ctx context.Context) ([]GroupName, error)
	Delete(ctx context.Context, name GroupName) error
}
