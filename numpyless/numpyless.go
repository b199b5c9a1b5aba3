// Package numpyless is a deliberately unimplemented pure-Go linear algebra
// exercise library. Every operation returns ErrNotImplemented until the
// student fills in its body; the grading harness classifies that error
// separately from a wrong answer.
//
// Types:
//
//	Vector: a 1D array of floats
//	Matrix: a 2D array of floats (rows x columns)
package numpyless

import "errors"

// ErrNotImplemented is returned by every operation whose body has not been
// written yet. Implementations must stop returning it once they produce a
// real result.
var ErrNotImplemented = errors.New("not implemented")

type Vector []float64

type Matrix [][]float64

// Zeros creates a rows x cols matrix filled with 0.0.
//
// NumPy equivalent: np.zeros((rows, cols))
func Zeros(rows, cols int) (Matrix, error) {
	return nil, ErrNotImplemented
}

// Ones creates a rows x cols matrix filled with 1.0.
//
// NumPy equivalent: np.ones((rows, cols))
func Ones(rows, cols int) (Matrix, error) {
	return nil, ErrNotImplemented
}

// Identity creates the n x n identity matrix.
//
// NumPy equivalent: np.eye(n)
func Identity(n int) (Matrix, error) {
	return nil, ErrNotImplemented
}

// Shape returns the (rows, columns) dimensions of a matrix.
//
// NumPy equivalent: a.shape
func Shape(a Matrix) (rows, cols int, err error) {
	return 0, 0, ErrNotImplemented
}

// Transpose returns the transpose of a matrix (rows become columns).
//
// NumPy equivalent: a.T
func Transpose(a Matrix) (Matrix, error) {
	return nil, ErrNotImplemented
}

// Dot computes the dot product of two vectors of the same dimension:
// v[0]*w[0] + v[1]*w[1] + ... + v[n]*w[n].
//
// NumPy equivalent: np.dot(v, w)
func Dot(v, w Vector) (float64, error) {
	return 0, ErrNotImplemented
}

// Add adds two vectors of the same dimension element by element.
//
// NumPy equivalent: v + w
func Add(v, w Vector) (Vector, error) {
	return nil, ErrNotImplemented
}

// Multiply scales every element of a vector by c.
//
// NumPy equivalent: c * v
func Multiply(c float64, v Vector) (Vector, error) {
	return nil, ErrNotImplemented
}

// Norm computes the L2 magnitude of a vector:
// sqrt(v[0]^2 + v[1]^2 + ... + v[n]^2).
//
// NumPy equivalent: np.linalg.norm(v)
func Norm(v Vector) (float64, error) {
	return 0, ErrNotImplemented
}

// AddMatrices adds two same-shape matrices element by element.
//
// NumPy equivalent: a + b
func AddMatrices(a, b Matrix) (Matrix, error) {
	return nil, ErrNotImplemented
}

// MultiplyMatrix scales every element of a matrix by c.
//
// NumPy equivalent: c * a
func MultiplyMatrix(c float64, a Matrix) (Matrix, error) {
	return nil, ErrNotImplemented
}

// MatMul multiplies an m x n matrix by an n x p matrix, giving m x p. Each
// result element [i][j] is the dot product of row i of a with column j of b.
//
// NumPy equivalent: a @ b
func MatMul(a, b Matrix) (Matrix, error) {
	return nil, ErrNotImplemented
}

// MatVec multiplies an m x n matrix by a vector of length n, giving a vector
// of length m.
//
// NumPy equivalent: a @ v
func MatVec(a Matrix, v Vector) (Vector, error) {
	return nil, ErrNotImplemented
}

// Det computes the determinant of a square matrix. The hardest one: direct
// formula for 2x2, cofactor expansion or gaussian elimination beyond that.
//
// NumPy equivalent: np.linalg.det(a)
func Det(a Matrix) (float64, error) {
	return 0, ErrNotImplemented
}
