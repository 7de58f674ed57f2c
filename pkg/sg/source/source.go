package source

import (
	"context"
	"errors"

	"github.com/komsit37/sg/pkg/sg/types"
)

var (
	// ErrRetrievalFailed reports that a result set could not be obtained.
	ErrRetrievalFailed = errors.New("retrieval failed")
	// ErrInvalidData reports that a result set was obtained but could not be used.
	ErrInvalidData = errors.New("invalid data")
)

// Source produces the result set for one analysis run.
type Source interface {
	Load(ctx context.Context) (types.ResultSet, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (types.ResultSet, error)

func (f SourceFunc) Load(ctx context.Context) (types.ResultSet, error) { return f(ctx) }
