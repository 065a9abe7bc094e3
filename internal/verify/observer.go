package verify

// Observer is notified of every assertion and every completed pass.
type Observer interface {
	Assertion(step string, err error)
	Pass(dataset string, err error, seconds float64)
}

type nopObserver struct{}

func (nopObserver) Assertion(string, error)     {}
func (nopObserver) Pass(string, error, float64) {}
