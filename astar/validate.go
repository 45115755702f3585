package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/terrain"
)

// Validate checks the search preconditions in order: grid present with
// positive dimensions, start and end inside the grid, start ≠ end, and
// neither endpoint a wall. The returned error wraps both ErrPrecondition
// and the specific sentinel.
func Validate(g *terrain.Grid) error {
	switch {
	case g == nil:
		return precondition(ErrNilGrid)
	case g.Width <= 0 || g.Height <= 0:
		return precondition(ErrEmptyGrid)
	case !g.Contains(g.Start):
		return fmt.Errorf("%w: %w %s", ErrPrecondition, ErrStartOutOfBounds, g.Start)
	case !g.Contains(g.End):
		return fmt.Errorf("%w: %w %s", ErrPrecondition, ErrEndOutOfBounds, g.End)
	case g.Start == g.End:
		return fmt.Errorf("%w: %w %s", ErrPrecondition, ErrSameEndpoints, g.Start)
	case g.IsWall(g.Start):
		return fmt.Errorf("%w: %w %s", ErrPrecondition, ErrStartWall, g.Start)
	case g.IsWall(g.End):
		return fmt.Errorf("%w: %w %s", ErrPrecondition, ErrEndWall, g.End)
	}

	return nil
}

func precondition(err error) error {
	return fmt.Errorf("%w: %w", ErrPrecondition, err)
}
