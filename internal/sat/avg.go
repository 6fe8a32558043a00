package sat

// EMA is an exponential moving average. It is used here purely as an
// observability statistic (Solver.backjumpSpan): nothing in
// search() reads an EMA's value, unlike a CDCL solver where the same helper
// would typically drive clause-activity decay or a restart policy.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay factor, in (0, 1].
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the running average.
func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
	} else {
		ema.value = ema.decay*ema.value + x*(1-ema.decay)
	}
}

// Val returns the current average.
func (ema *EMA) Val() float64 {
	return ema.value
}
