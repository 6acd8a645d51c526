package proxy

import (
	"errors"
	"testing"
)

// ---- Types under test ----

type cookie struct {
	name string
}

type cookieService interface {
	Bake() []cookie
	DistributeAll()
}

// bakery is the real backing implementation used across tests. DistributeAll
// records what it handed out so tests can observe which binding ran.
type bakery struct {
	distributed []string
}

func (b *bakery) Bake() []cookie {
	return []cookie{{name: "gingerbread"}, {name: "shortbread"}}
}

func (b *bakery) DistributeAll() {
	for _, c := range b.Bake() {
		b.distributed = append(b.distributed, c.name)
	}
}

// charity is an alternate rebind target with a differently named operation.
type charity struct {
	donated int
}

func (c *charity) AltDistribute() {
	c.donated++
}

// calcService exercises parameters, multiple results and variadics.
type calcService interface {
	Add(a, b int) int
	Divide(a, b float64) (float64, error)
	Sum(xs ...int) int
}

var errDivideByZero = errors.New("divide by zero")

type calculator struct{}

func (calculator) Add(a, b int) int { return a + b }

func (calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

func (calculator) Sum(xs ...int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// doubler provides compatible and incompatible rebind targets for calcService.
type doubler struct{}

func (doubler) AddTwice(a, b int) int { return 2 * (a + b) }

func (doubler) SumTwice(xs ...int) int {
	total := 0
	for _, x := range xs {
		total += 2 * x
	}
	return total
}

func (doubler) WrongArity(a int) int { return a }

func (doubler) WrongResult(a, b int) string { return "" }

// unregisteredService has no proxy implementation registered.
type unregisteredService interface {
	Ping() error
}

// ---- Generated-form proxies ----
//
// These mirror the code proxygen emits, so the runtime is tested against the
// exact shape generated proxies have.

type cookieServiceProxy struct {
	backing cookieService

	BakeSlot          Slot[func() []cookie]
	DistributeAllSlot Slot[func()]
}

func newCookieServiceProxy(backing cookieService) *cookieServiceProxy {
	p := &cookieServiceProxy{backing: backing}
	p.BakeSlot.Set(backing.Bake)
	p.DistributeAllSlot.Set(backing.DistributeAll)
	return p
}

func (p *cookieServiceProxy) Bake() []cookie { return p.BakeSlot.Get()() }

func (p *cookieServiceProxy) DistributeAll() { p.DistributeAllSlot.Get()() }

type calcServiceProxy struct {
	backing calcService

	AddSlot    Slot[func(int, int) int]
	DivideSlot Slot[func(float64, float64) (float64, error)]
	SumSlot    Slot[func(...int) int]
}

func newCalcServiceProxy(backing calcService) *calcServiceProxy {
	p := &calcServiceProxy{backing: backing}
	p.AddSlot.Set(backing.Add)
	p.DivideSlot.Set(backing.Divide)
	p.SumSlot.Set(backing.Sum)
	return p
}

func (p *calcServiceProxy) Add(a, b int) int { return p.AddSlot.Get()(a, b) }

func (p *calcServiceProxy) Divide(a, b float64) (float64, error) { return p.DivideSlot.Get()(a, b) }

func (p *calcServiceProxy) Sum(xs ...int) int { return p.SumSlot.Get()(xs...) }

func init() {
	Register[cookieService](func(backing cookieService) cookieService {
		return newCookieServiceProxy(backing)
	})
	Register[calcService](func(backing calcService) calcService {
		return newCalcServiceProxy(backing)
	})
}

// ---- Helpers ----

func mustFactory[T any](t *testing.T) *Factory[T] {
	t.Helper()
	f, err := New[T]()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return f
}

func mustCreate[T any](t *testing.T, f *Factory[T], backing T) T {
	t.Helper()
	p, err := f.Create(backing)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return p
}
