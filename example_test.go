package proxy

import (
	"fmt"
)

// consoleBakery is a cookieService implementation with observable output.
type consoleBakery struct{}

func (consoleBakery) Bake() []cookie {
	return []cookie{{name: "gingerbread"}, {name: "shortbread"}}
}

func (b consoleBakery) DistributeAll() {
	for _, c := range b.Bake() {
		fmt.Println("distributing", c.name)
	}
}

// pantry is an alternate target whose operation has a different name.
type pantry struct{}

func (pantry) Stash() {
	fmt.Println("stashing everything in the pantry")
}

func ExampleNew() {
	factory, err := New[cookieService]()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	service, err := factory.Create(consoleBakery{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Every operation forwards to the backing instance by default.
	fmt.Println("baked", len(service.Bake()), "cookies")
	service.DistributeAll()

	// Output:
	// baked 2 cookies
	// distributing gingerbread
	// distributing shortbread
}

func ExampleRebind() {
	factory, err := New[cookieService]()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	service, err := factory.Create(consoleBakery{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	service.DistributeAll()

	// Rebind a single operation; Bake keeps its default binding.
	if err := Rebind(service, "DistributeAll", pantry{}, "Stash"); err != nil {
		fmt.Println("error:", err)
		return
	}
	service.DistributeAll()
	fmt.Println("still baking", len(service.Bake()), "cookies")

	// Output:
	// distributing gingerbread
	// distributing shortbread
	// stashing everything in the pantry
	// still baking 2 cookies
}
