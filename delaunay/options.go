package delaunay

// Option configures a Mesh at construction.
type Option func(*Mesh)

// WithRobustInCircle replaces the default in-circle test with the determinant
// predicate evaluated fresh from the triangle's vertices on every query.
//
// The default test compares squared distance against a circumcircle cached at
// face creation. It is fast, but it inherits whatever error was baked into
// the cache, and near-degenerate faces can cache centers far from the truth.
// The determinant form avoids the cached intermediate; it is still plain
// float64 arithmetic, not adaptive precision, so it narrows the failure
// window rather than closing it. Callers with well-separated input lose
// nothing by staying on the default.
func WithRobustInCircle() Option {
	return func(m *Mesh) {
		m.robustInCircle = true
	}
}
