package manifold

import "fmt"

// Settle parses text and runs the beams until they settle.
func Settle(text string, opts ...Option) (*Manifold, error) {
	g, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing manifold: %w", err)
	}
	m := New(g, opts...)
	m.Run()
	return m, nil
}

// PartOne returns the number of splitters hit by a beam.
func PartOne(text string) (int, error) {
	m, err := Settle(text)
	if err != nil {
		return 0, err
	}
	return m.Hits(), nil
}

// PartTwo returns the number of timelines.
func PartTwo(text string) (int, error) {
	m, err := Settle(text)
	if err != nil {
		return 0, err
	}
	return m.Timelines(), nil
}
