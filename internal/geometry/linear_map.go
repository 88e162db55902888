package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LinearMap is a square matrix stored as row vectors. Apply computes each
// output coordinate as the dot product of a row with the input.
type LinearMap struct {
	rows []RealPoint
}

// NewLinearMap panics unless it is given D rows of dimension D.
func NewLinearMap(rows ...RealPoint) LinearMap {
	if len(rows) == 0 {
		panic("geometry: linear map needs at least one row")
	}
	out := make([]RealPoint, len(rows))
	for i, r := range rows {
		mustMatch(len(rows), len(r))
		out[i] = r.Clone()
	}
	return LinearMap{rows: out}
}

func Identity(dim int) LinearMap {
	return Scaling(dim, 1)
}

func Scaling(dim int, factor float64) LinearMap {
	rows := make([]RealPoint, dim)
	for i := range rows {
		rows[i] = RealOrigin(dim)
		rows[i][i] = factor
	}
	return LinearMap{rows: rows}
}

// Rotation turns the plane spanned by axes a and b by theta radians and
// leaves every other axis alone.
func Rotation(dim, a, b int, theta float64) LinearMap {
	if a == b || a < 0 || b < 0 || a >= dim || b >= dim {
		panic(fmt.Sprintf("geometry: bad rotation plane (%d, %d) for dimension %d", a, b, dim))
	}
	m := Identity(dim)
	sin, cos := math.Sincos(theta)
	m.rows[a][a] = cos
	m.rows[a][b] = -sin
	m.rows[b][a] = sin
	m.rows[b][b] = cos
	return m
}

func (m LinearMap) Dim() int {
	return len(m.rows)
}

func (m LinearMap) Row(i int) RealPoint {
	return m.rows[i].Clone()
}

func (m LinearMap) Apply(p RealPoint) RealPoint {
	mustMatch(len(m.rows), len(p))
	out := make(RealPoint, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Dot(p)
	}
	return out
}

// Compose returns the map that applies n first and then m.
func (m LinearMap) Compose(n LinearMap) LinearMap {
	mustMatch(m.Dim(), n.Dim())
	var prod mat.Dense
	prod.Mul(m.dense(), n.dense())
	return fromDense(&prod)
}

func (m LinearMap) Det() float64 {
	return mat.Det(m.dense())
}

// Inverse fails for singular or near-singular maps.
func (m LinearMap) Inverse() (LinearMap, error) {
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		return LinearMap{}, fmt.Errorf("invert linear map: %w", err)
	}
	return fromDense(&inv), nil
}

func (m LinearMap) dense() *mat.Dense {
	dim := len(m.rows)
	data := make([]float64, 0, dim*dim)
	for _, r := range m.rows {
		data = append(data, r...)
	}
	return mat.NewDense(dim, dim, data)
}

func fromDense(d *mat.Dense) LinearMap {
	dim, _ := d.Dims()
	rows := make([]RealPoint, dim)
	for i := range rows {
		rows[i] = NewRealPoint(mat.Row(nil, i, d)...)
	}
	return LinearMap{rows: rows}
}
