package element

import "calsdt/domain/core"

var digitTable = [10]Element{
	0: Earth,
	1: Water,
	2: Earth,
	3: Wood,
	4: Wood,
	5: Earth,
	6: Metal,
	7: Metal,
	8: Earth,
	9: Fire,
}

// Classify maps a digit to its element. A digit outside 0-9 is a caller bug
// and panics; use ClassifyChecked when the input is not already validated.
func Classify(d uint8) Element {
	e, err := ClassifyChecked(d)
	if err != nil {
		panic(err)
	}
	return e
}

// ClassifyChecked is Classify returning ErrInvalidDigit instead of panicking.
func ClassifyChecked(d uint8) (Element, error) {
	if d > 9 {
		return 0, core.NewInvalidDigitError(int(d))
	}
	return digitTable[d], nil
}

// relationMatrix[from][to] is +1, 0 or -1.
var relationMatrix = [Count][Count]int8{
	Water: {0, -1, 1, 0, -1},
	Earth: {1, 0, -1, 0, 1},
	Wood:  {0, 1, 0, -1, 1},
	Metal: {1, 0, 1, 0, -1},
	Fire:  {-1, 1, 0, 1, 0},
}

// Relation returns the matrix entry for the ordered pair (from, to).
func Relation(from, to Element) int {
	return int(relationMatrix[from][to])
}
