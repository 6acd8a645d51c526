package proxy

import (
	"reflect"
	"sync"
	"testing"
)

func TestSlot(t *testing.T) {
	t.Parallel()

	t.Run("zero slot is unbound", func(t *testing.T) {
		var s Slot[func() int]
		if s.Get() != nil {
			t.Fatalf("expected nil callable from zero slot")
		}
	})

	t.Run("set and get", func(t *testing.T) {
		var s Slot[func() int]
		s.Set(func() int { return 7 })
		if got := s.Get()(); got != 7 {
			t.Fatalf("got %d, want 7", got)
		}
		s.Set(func() int { return 11 })
		if got := s.Get()(); got != 11 {
			t.Fatalf("got %d after replace, want 11", got)
		}
	})

	t.Run("signature", func(t *testing.T) {
		var s Slot[func(string) error]
		want := reflect.TypeOf((func(string) error)(nil))
		if got := s.signature(); got != want {
			t.Fatalf("signature %v, want %v", got, want)
		}
	})

	t.Run("load on unbound slot", func(t *testing.T) {
		var s Slot[func()]
		v := s.load()
		if v.Type() != s.signature() {
			t.Fatalf("load type %v, want %v", v.Type(), s.signature())
		}
		if !v.IsNil() {
			t.Fatalf("expected nil callable value")
		}
	})

	t.Run("store via reflection", func(t *testing.T) {
		var s Slot[func(int) int]
		s.store(reflect.ValueOf(func(x int) int { return x * 3 }))
		if got := s.Get()(5); got != 15 {
			t.Fatalf("got %d, want 15", got)
		}
	})
}

// TestSlotConcurrentSwap exercises the atomicity contract: replacing a
// slot's callable races with invocations through the same slot, and every
// invocation must observe a complete callable. Run with -race.
func TestSlotConcurrentSwap(t *testing.T) {
	t.Parallel()

	var s Slot[func() int]
	s.Set(func() int { return 1 })

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			n := i%2 + 1
			s.Set(func() int { return n })
		}
	}()

	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10000; i++ {
				if got := s.Get()(); got != 1 && got != 2 {
					t.Errorf("observed torn callable result %d", got)
					return
				}
			}
		}()
	}

	wg.Wait()
}
