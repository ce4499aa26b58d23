package powerlaw_test

// fixedSource replays us in order, wrapping around; it counts every draw.
type fixedSource struct {
	us    []float64
	calls int
}

func (f *fixedSource) Float64() float64 {
	u := f.us[f.calls%len(f.us)]
	f.calls++
	return u
}

// sum adds up xs.
func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
