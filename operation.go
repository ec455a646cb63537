package numeric

// Expr is a chain of rational arithmetic with deferred reduction.
//
// Every [Rational] operation returns an unreduced result, and reducing
// after each step of a chained expression pays the GCD cost once per
// step. An Expr combines the raw numerator/denominator pairs with the
// same formulas as the Rational operations and reduces exactly once,
// when the chain is materialized with [Expr.Rational].
//
// The numerator and denominator of an unmaterialized chain grow without
// bound: each addition multiplies the denominators. Long-running
// accumulation must materialize periodically; [Sum] does this every
// [SumReduceEvery] terms.
type Expr struct {
	r Rational
}

// Expr starts a deferred-reduction chain at q.
func (q Rational) Expr() Expr {
	return Expr{r: q}
}

// Add extends the chain with an unreduced addition.
func (e Expr) Add(q Rational) Expr {
	return Expr{r: e.r.Add(q)}
}

// Sub extends the chain with an unreduced subtraction.
func (e Expr) Sub(q Rational) Expr {
	return Expr{r: e.r.Sub(q)}
}

// Mul extends the chain with an unreduced multiplication.
func (e Expr) Mul(q Rational) Expr {
	return Expr{r: e.r.Mul(q)}
}

// Quo extends the chain with an unreduced division.
func (e Expr) Quo(q Rational) Expr {
	return Expr{r: e.r.Quo(q)}
}

// Join appends another chain without materializing either side.
func (e Expr) Join(o Expr) Expr {
	return Expr{r: e.r.Add(o.r)}
}

// Rational materializes the chain with a single [Rational.Reduce].
func (e Expr) Rational() Rational {
	return e.r.Reduce()
}

// SumReduceEvery is the number of accumulated terms after which [Sum]
// forces a reduction of the running total. Batching the GCD reduction
// trades peak intermediate magnitude against total reduction cost:
// without it the denominator of the running total is the product of all
// term denominators seen so far.
const SumReduceEvery = 8

// Sum returns the reduced sum of the given rationals.
// Sum of no terms is zero. Sum of a single term is that term,
// returned with its representation unchanged.
// The result does not depend on the order of the terms.
func Sum(qs ...Rational) Rational {
	// Special cases
	switch len(qs) {
	case 0:
		return Rational{}
	case 1:
		return qs[0]
	}

	// General case
	acc := qs[0].Expr()
	for i, q := range qs[1:] {
		acc = acc.Add(q)
		if (i+2)%SumReduceEvery == 0 {
			acc = acc.Rational().Expr()
		}
	}
	return acc.Rational()
}
