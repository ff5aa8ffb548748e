// Package merkle builds binary Merkle trees over sponge digests. A node
// without a sibling is carried to the next level unchanged.
package merkle

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MergeFunc combines two sibling nodes into their parent.
type MergeFunc[T any] func(a, b T) (T, error)

// Func adapts a merge that cannot fail.
func Func[T any](merge func(a, b T) T) MergeFunc[T] {
	return func(a, b T) (T, error) { return merge(a, b), nil }
}

var (
	ErrEmpty = errors.New("algohash: merkle tree needs at least one leaf")
	ErrIndex = errors.New("algohash: leaf index out of range")
)

// Levels returns every level of the tree, leaves first and the root level
// (a single node) last. Each level is merged in parallel by up to workers
// goroutines; workers < 1 means one.
func Levels[T any](ctx context.Context, leaves []T, merge MergeFunc[T], workers int) ([][]T, error) {
	if len(leaves) == 0 {
		return nil, ErrEmpty
	}
	workers = max(workers, 1)
	levels := [][]T{append([]T(nil), leaves...)}
	for cur := levels[0]; len(cur) > 1; cur = levels[len(levels)-1] {
		next, err := level(ctx, cur, merge, workers)
		if err != nil {
			return nil, err
		}
		levels = append(levels, next)
	}
	return levels, nil
}

func level[T any](ctx context.Context, cur []T, merge MergeFunc[T], workers int) ([]T, error) {
	pairs := len(cur) / 2
	next := make([]T, (len(cur)+1)/2)
	if len(cur)%2 == 1 {
		next[pairs] = cur[len(cur)-1]
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := max((pairs+workers-1)/workers, 1)
	for start := 0; start < pairs; start += chunk {
		end := min(start+chunk, pairs)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				n, err := merge(cur[2*i], cur[2*i+1])
				if err != nil {
					return err
				}
				next[i] = n
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("algohash: merkle level of %d nodes: %w", len(cur), err)
	}
	return next, nil
}

// Root returns the root of the tree over leaves.
func Root[T any](ctx context.Context, leaves []T, merge MergeFunc[T], workers int) (T, error) {
	levels, err := Levels(ctx, leaves, merge, workers)
	if err != nil {
		var zero T
		return zero, err
	}
	return levels[len(levels)-1][0], nil
}

// Step is one sibling on the path from a leaf to the root.
type Step[T any] struct {
	Sibling T
	// Left is set when Sibling is the left operand of the merge.
	Left bool
}

// Proof returns the authentication path of leaf index. Levels where the
// node is carried have no step.
func Proof[T any](levels [][]T, index int) ([]Step[T], error) {
	if len(levels) == 0 {
		return nil, ErrEmpty
	}
	if index < 0 || index >= len(levels[0]) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, index, len(levels[0]))
	}
	var proof []Step[T]
	for _, lvl := range levels[:len(levels)-1] {
		sib := index ^ 1
		if sib < len(lvl) {
			proof = append(proof, Step[T]{Sibling: lvl[sib], Left: sib < index})
		}
		index /= 2
	}
	return proof, nil
}

// Verify recomputes the root from leaf and proof and compares it to root.
func Verify[T any](root, leaf T, proof []Step[T], merge MergeFunc[T], equal func(a, b T) bool) (bool, error) {
	acc := leaf
	var err error
	for _, s := range proof {
		if s.Left {
			acc, err = merge(s.Sibling, acc)
		} else {
			acc, err = merge(acc, s.Sibling)
		}
		if err != nil {
			return false, err
		}
	}
	return equal(acc, root), nil
}
