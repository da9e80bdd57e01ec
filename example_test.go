package orderedmap_test

import (
	"encoding/json"
	"fmt"

	"github.com/memo/orderedmap"
)

type data struct {
	age    int
	height int
}

func Example() {
	people := orderedmap.New[string, *data]()

	people.Insert("memo", &data{age: 37, height: 175})
	people.Insert("jane", &data{age: 27, height: 165})
	people.Insert("pearl", &data{age: 2, height: 15})
	people.Insert("bruce", &data{age: 3, height: 12})

	if !people.Has("blufo") {
		fmt.Println("blufo doesn't exist!")
	}

	// everyone gets one year older, mutating in place through the
	// references handed out by positional lookup
	for i := 0; i < people.Len(); i++ {
		ref, _ := people.At(i)
		(*ref).age++
	}

	people.DeleteAt(1)     // jane moves out
	people.Delete("bruce") // so does bruce
	people.RenameAt(0, "mehmet")

	for name, d := range people.FromOldest() {
		fmt.Printf("%d: %s is %d years old\n", people.IndexOf(name), name, d.age)
	}

	// Output:
	// blufo doesn't exist!
	// 0: mehmet is 38 years old
	// 1: pearl is 3 years old
}

func ExampleOrderedMap_MarshalJSON() {
	om := orderedmap.New[string, int]()
	om.Insert("z", 1)
	om.Insert("a", 2)
	om.Insert("m", 3)

	b, _ := json.Marshal(om)
	fmt.Println(string(b))

	// Output:
	// {"z":1,"a":2,"m":3}
}

func ExampleOrderedMap_UnmarshalJSON() {
	om := orderedmap.New[string, int]()
	_ = json.Unmarshal([]byte(`{"z":1,"a":2,"m":3}`), om)

	for key := range om.KeysFromOldest() {
		fmt.Println(key)
	}

	// Output:
	// z
	// a
	// m
}
