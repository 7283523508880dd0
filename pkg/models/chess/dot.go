package chess

import "fmt"

// Point is a grid intersection. A grid of rows x cols boxes has (rows+1) x (cols+1) points.
type Point struct {
	Row int
	Col int
}

func NewPoint(row, col int) Point {
	return Point{Row: row, Col: col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

func Points(rows, cols int) (points []Point) {
	for r := range rows + 1 {
		for c := range cols + 1 {
			points = append(points, NewPoint(r, c))
		}
	}
	return
}
