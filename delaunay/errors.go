package delaunay

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Invariant violations can surface several calls deep inside the cavity walk
// and the relink bookkeeping, where returning errors up through every helper
// would bury the algorithm in plumbing. Internally we panic with a tagged
// error instead, and every exported entry point recovers and converts it to
// an ordinary error return. Genuine panics from anything else are re-raised
// untouched.

var (
	// ErrOutOfBounds reports an inserted point that no live circumcircle
	// contains: the bounding square promised at construction did not actually
	// bound the input. The mesh is untouched and further insertions are fine.
	ErrOutOfBounds = errors.New("point out of bounds of the triangulation")

	// ErrDegenerate reports input the predicates cannot survive: an exact
	// duplicate of an existing point, or a new face so close to collinear
	// that its circumcircle is unusable. The mesh is untouched.
	ErrDegenerate = errors.New("degenerate input")

	// ErrConsistency reports internal mesh corruption: a neighbor relation
	// that should exist is missing, or the cavity walk failed to close. It
	// indicates a bug or input past what the predicates can handle, and is
	// detected before any mutation commits.
	ErrConsistency = errors.New("mesh consistency violation")

	// ErrIndexOutOfRange reports a vertex slot outside 0..2.
	ErrIndexOutOfRange = errors.New("triangle vertex index out of range")
)

// IsOutOfBounds reports whether err is an out-of-bounds precondition failure.
func IsOutOfBounds(err error) bool { return stderrors.Is(err, ErrOutOfBounds) }

// IsDegenerate reports whether err was caused by duplicate or collinear input.
func IsDegenerate(err error) bool { return stderrors.Is(err, ErrDegenerate) }

// IsConsistency reports whether err is an internal consistency violation.
func IsConsistency(err error) bool { return stderrors.Is(err, ErrConsistency) }

// meshError wraps a thrown error so recovery can tell our throws apart from
// real panics.
type meshError struct {
	err error
}

func throw(kind error, format string, args ...interface{}) {
	panic(meshError{errors.WithMessagef(kind, format, args...)})
}

// recoverMeshError converts a thrown mesh error into an error return. Call it
// in a defer with the result of recover():
//
//	defer func() { recoverMeshError(recover(), &err) }()
func recoverMeshError(r interface{}, err *error) {
	if r == nil {
		return
	}
	if me, ok := r.(meshError); ok {
		*err = me.err
		return
	}
	panic(r)
}
