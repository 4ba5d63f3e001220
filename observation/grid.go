package observation

// Grid is an evenly spaced search grid: Count values starting at First and
// separated by Step. Last is always First + (Count-1)*Step.
type Grid[T int | float64] struct {
	Count int
	First T
	Last  T
	Step  T
}

func newGrid[T int | float64](count int, first, step T) Grid[T] {
	g := Grid[T]{Count: count, First: first, Last: first, Step: step}
	if count > 1 {
		g.Last = first + T(count-1)*step
	}

	return g
}

// Values returns every grid value in ascending index order.
func (g Grid[T]) Values() []T {
	values := make([]T, g.Count)
	for i := range values {
		values[i] = g.First + T(i)*g.Step
	}

	return values
}

// PaddedCount returns Pad(Count, padding).
func (g Grid[T]) PaddedCount(padding int) int {
	return Pad(g.Count, padding)
}
