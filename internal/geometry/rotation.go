package geometry

// Rotation is a 3x3 matrix with integer entries, used to express one of
// the 24 proper rotations of the cube: every row is a signed unit
// vector, and every column holds exactly one nonzero entry. Applying a
// Rotation never requires floating point.
type Rotation [3][3]int

// axisPermutations lists the six orderings of the X, Y, Z axes. Row i
// of a candidate matrix places its nonzero entry in column perm[i].
var axisPermutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2},
	{1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

var signCombinations = [8][3]int{
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
	{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
}

// allRotations is computed once at package init and never mutated.
var allRotations = buildRotations()

// AllRotations returns the 24 proper rotations of the cubic group.
// Construction enumerates all 48 signed-axis-permutation matrices and
// keeps the 24 with determinant +1; order is the deterministic order
// of that enumeration (axis permutations outer, sign combinations
// inner) and is stable across every run of this package.
func AllRotations() []Rotation {
	return allRotations
}

func buildRotations() []Rotation {
	rotations := make([]Rotation, 0, 24)
	for _, perm := range axisPermutations {
		for _, signs := range signCombinations {
			var m Rotation
			for row := 0; row < 3; row++ {
				m[row][perm[row]] = signs[row]
			}
			if determinant(m) > 0 {
				rotations = append(rotations, m)
			}
		}
	}
	return rotations
}

func determinant(m Rotation) int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Apply returns the cell obtained by the integer matrix-vector product
// m * c.
func (m Rotation) Apply(c Cell) Cell {
	v := [3]int{c.X, c.Y, c.Z}
	return Cell{
		X: m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		Y: m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		Z: m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}
