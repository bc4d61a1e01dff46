package bridge

import (
	"gonum.org/v1/gonum/mat"
)

// params packs a PathBridge's station arrays into one flat vector for the
// solver: [z_0..z_N, xl_0..xl_N, xr_0..xr_N].
func params(b *PathBridge) []float64 {
	n1 := b.N + 1
	p := make([]float64, 3*n1)
	copy(p[0:n1], b.Z)
	copy(p[n1:2*n1], b.Xl)
	copy(p[2*n1:3*n1], b.Xr)
	return p
}

func unpack(b *PathBridge, p []float64) (z, xl, xr []float64) {
	n1 := b.N + 1
	return p[0:n1], p[n1 : 2*n1], p[2*n1 : 3*n1]
}

const finiteDiffStep = 1e-4

// evaluate returns the residual vector for flat parameter vector p.
func evaluate(b *PathBridge, ctx Context, p []float64, opts Options) []float64 {
	z, xl, xr := unpack(b, p)
	res, _ := residuals(b, ctx, z, xl, xr, opts)
	return res
}

// jacobian builds the residual Jacobian by central differences. The
// solver favors a numerically-differentiated Jacobian over hand-derived
// analytic gradients for every residual block: with no ability to run
// the solver, a finite-difference Jacobian cannot carry a sign or
// algebra error the way an untested closed-form derivative could, and
// gonum's Cholesky solve of the normal equations is indifferent to how J
// was built.
func jacobian(b *PathBridge, ctx Context, p []float64, opts Options, m int) *mat.Dense {
	n := len(p)
	j := mat.NewDense(m, n, nil)
	pert := make([]float64, n)
	copy(pert, p)
	for col := 0; col < n; col++ {
		orig := pert[col]
		pert[col] = orig + finiteDiffStep
		rPlus := evaluate(b, ctx, pert, opts)
		pert[col] = orig - finiteDiffStep
		rMinus := evaluate(b, ctx, pert, opts)
		pert[col] = orig
		for row := 0; row < m; row++ {
			j.Set(row, col, (rPlus[row]-rMinus[row])/(2*finiteDiffStep))
		}
	}
	return j
}

// toSym copies a square Dense's upper triangle into a SymDense, which is
// what gonum's Cholesky factorization requires.
func toSym(d *mat.Dense) *mat.SymDense {
	rows, _ := d.Dims()
	sym := mat.NewSymDense(rows, nil)
	for i := 0; i < rows; i++ {
		for k := i; k < rows; k++ {
			sym.SetSym(i, k, d.At(i, k))
		}
	}
	return sym
}

func sumSquares(r []float64) float64 {
	var s float64
	for _, v := range r {
		s += v * v
	}
	return s
}

// Solve runs the Gauss-Newton loop: dense normal-equation Cholesky
// factorization with non-monotonic step acceptance. Every iteration's
// step is taken unconditionally (no line search / rejection), and the
// lowest-cost parameter vector seen across all iterations is kept at
// the end — cancellation is simply best-so-far.
func Solve(b *PathBridge, ctx Context, opts Options) {
	p := params(b)
	r0 := evaluate(b, ctx, p, opts)
	best := append([]float64(nil), p...)
	bestCost := sumSquares(r0)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		r := evaluate(b, ctx, p, opts)
		j := jacobian(b, ctx, p, opts, len(r))

		var jt, jtj mat.Dense
		jt.CloneFrom(j.T())
		jtj.Mul(&jt, j)
		jtjSym := toSym(&jtj)

		rVec := mat.NewVecDense(len(r), r)
		var jtr mat.VecDense
		jtr.MulVec(&jt, rVec)

		var chol mat.Cholesky
		ok := chol.Factorize(jtjSym)
		var step mat.VecDense
		if ok {
			if err := chol.SolveVecTo(&step, &jtr); err != nil {
				break
			}
		} else {
			break // singular normal equations; keep best-so-far
		}

		for i := range p {
			p[i] -= step.AtVec(i)
		}

		cost := sumSquares(evaluate(b, ctx, p, opts))
		if cost < bestCost {
			bestCost = cost
			best = append(best[:0], p...)
		}
	}

	z, xl, xr := unpack(b, best)
	copy(b.Z, z)
	copy(b.Xl, xl)
	copy(b.Xr, xr)
}
