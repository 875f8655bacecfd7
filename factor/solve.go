package factor

import (
	"math/big"

	"github.com/ekera/quaspy/field"
	"github.com/ekera/quaspy/group"
	"github.com/ekera/quaspy/numtheory"
	"github.com/ekera/quaspy/orderfinding"
	"github.com/ekera/quaspy/timeout"
)

// OptProcessCompositeFactors selects which modulus N' each iteration of
// the factor search works in.
type OptProcessCompositeFactors int

const (
	// JointlyModN always works modulo the whole N.
	JointlyModN OptProcessCompositeFactors = iota
	// JointlyModNp works modulo the product of the remaining composite
	// factors.
	JointlyModNp
	// SeparatelyModNp works modulo each remaining composite factor in
	// turn.
	SeparatelyModNp
)

// Options configures SolveRForFactors.
type Options struct {
	// C is the smoothness multiplier for the exponent's prime-power
	// product. Defaults to 1.
	C int
	// MaxIterations is the sampling budget k. Defaults to 100.
	MaxIterations int
	// ProcessCompositeFactors selects the working modulus per iteration.
	ProcessCompositeFactors OptProcessCompositeFactors
	// SplitFactorsWithMultiplicity seeds the collection with gcd(r, N)
	// before sampling, catching prime factors shared between r and N.
	SplitFactorsWithMultiplicity bool
	// Square computes x^(2^(i+1)*o) by squaring the previous power rather
	// than exponentiating from scratch.
	Square bool
	// AbortEarly stops the inner squaring loop at the first power that
	// reaches the identity.
	AbortEarly bool
	// ReportAccidentalFactors also adds any non-trivial gcd of a sampled
	// x with N'.
	ReportAccidentalFactors bool
	// ExcludeOne rejects the sample x = 1.
	ExcludeOne bool
}

// DefaultOptions is the recommended configuration: squaring, early abort
// and accidental-factor reporting on.
func DefaultOptions() Options {
	return Options{
		C:                            1,
		MaxIterations:                100,
		ProcessCompositeFactors:      SeparatelyModNp,
		SplitFactorsWithMultiplicity: true,
		Square:                       true,
		AbortEarly:                   true,
		ReportAccidentalFactors:      true,
		ExcludeOne:                   true,
	}
}

func (o Options) withDefaults() Options {
	if o.C == 0 {
		o.C = 1
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = 100
	}
	return o
}

// SolveRForFactors factors N completely given a positive multiple r of the
// order of some unit modulo N. It repeatedly samples a unit
// x modulo a working modulus N', computes y = x^o for the odd part o of
// the smooth-padded exponent prime_power_product(c*ceil(log2 N)) * r, and
// feeds gcd(y -+ 1, N') to the collection while squaring y up to the
// 2-valuation of the padded exponent.
// On success the distinct primes of N are returned ascending; when
// the budget or the deadline runs out the error is an
// *IncompleteFactorisationError carrying the partial collection.
func SolveRForFactors(r, N field.Integer, opts Options, rnd Rand, tmo *timeout.Timeout) ([]field.Integer, error) {
	opts = opts.withDefaults()
	if r.Sign() <= 0 {
		return nil, ErrDomain
	}
	col, err := New(N)
	if err != nil {
		return nil, err
	}
	if opts.SplitFactorsWithMultiplicity {
		col.Add(r.Gcd(N))
	}
	if col.IsComplete() {
		return col.Primes(), nil
	}

	// Write prime_power_product(c*ceil(log2 N)) * r as 2^t * o with o odd:
	// the gcd cascade walks x^o, x^(2o), ..., x^(2^t*o), so the base
	// exponent must be the odd part of the full padded product or even
	// orders are annihilated before the first gcd is ever taken.
	full := numtheory.PrimePowerProduct(opts.C * N.BitLen()).Mul(r)
	t := numtheory.Kappa(full)
	o := full.Rsh(uint(t))
	one := field.NewIntInt64(1)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		if err := tmo.Check(); err != nil {
			return nil, &IncompleteFactorisationError{Partial: col}
		}
		for _, Np := range workingModuli(col, N, opts.ProcessCompositeFactors) {
			x, ok := sampleUnit(Np, col, opts, rnd)
			if !ok {
				continue
			}
			y := expMod(x, o, Np)
			for i := 0; ; i++ {
				col.Add(y.Sub(one).Gcd(Np))
				col.Add(y.Add(one).Gcd(Np))
				if i >= t {
					break
				}
				if opts.AbortEarly && y.Cmp(one) == 0 {
					break
				}
				if opts.Square {
					y = y.Mul(y).Mod(Np)
				} else {
					y = expMod(x, field.NewIntInt64(1).Lsh(uint(i+1)).Mul(o), Np)
				}
			}
		}
		if col.IsComplete() {
			return col.Primes(), nil
		}
		debugf("factor: iteration %d: %d composite factors left\n",
			iter, len(col.Composites()))
	}
	return nil, &IncompleteFactorisationError{Partial: col}
}

// workingModuli lists the moduli the next iteration exponentiates in.
func workingModuli(col *Collection, N field.Integer, opt OptProcessCompositeFactors) []field.Integer {
	switch opt {
	case JointlyModN:
		return []field.Integer{N}
	case JointlyModNp:
		comps := col.Composites()
		if len(comps) == 0 {
			return nil
		}
		prod := field.NewIntInt64(1)
		for _, f := range comps {
			prod = prod.Mul(f)
		}
		return []field.Integer{prod}
	default:
		return col.Composites()
	}
}

// sampleUnit draws x uniformly from (Z/N'Z)*, reporting accidental factors
// of non-units to the collection when asked. A bounded number of draws
// guards against degenerate moduli with almost no units.
func sampleUnit(Np field.Integer, col *Collection, opts Options, rnd Rand) (field.Integer, bool) {
	one := field.NewIntInt64(1)
	for attempt := 0; attempt < 128; attempt++ {
		x := rnd.UniformBelow(Np)
		if x.Sign() == 0 {
			continue
		}
		if opts.ExcludeOne && x.Cmp(one) == 0 {
			continue
		}
		g := x.Gcd(Np)
		if g.Cmp(one) != 0 {
			if opts.ReportAccidentalFactors {
				col.Add(g)
			}
			continue
		}
		return x, true
	}
	return field.Integer{}, false
}

func expMod(x, e, m field.Integer) field.Integer {
	return field.NewInt(new(big.Int).Exp(x.Big(), e.Big(), m.Big()))
}

// SolveJForFactors chains order finding and factoring: it recovers the
// order r of g from the frequency j and hands (r, N) to SolveRForFactors.
func SolveJForFactors(j field.Integer, m, l int, g group.Element, N field.Integer, ofOpts orderfinding.Options, fOpts Options, rnd Rand, tmo *timeout.Timeout) ([]field.Integer, error) {
	r, ok, err := orderfinding.SolveJForR(j, m, l, g, ofOpts, tmo)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmtError("factor: order finding recovered no r from j")
	}
	return SolveRForFactors(r, N, fOpts, rnd, tmo)
}

// SolveJForFactorsModN is SolveJForFactors for a generator given as an
// integer g modulo N.
func SolveJForFactorsModN(j field.Integer, m, l int, g, N field.Integer, ofOpts orderfinding.Options, fOpts Options, rnd Rand, tmo *timeout.Timeout) ([]field.Integer, error) {
	return SolveJForFactors(j, m, l, group.NewModN(g, N), N, ofOpts, fOpts, rnd, tmo)
}
