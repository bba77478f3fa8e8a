/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums_test

import (
	"fmt"

	"github.com/madison-web-solutions/go-enum/pkg/enums"
)

func Example() {
	fruit := enums.MustNew("Fruit", func(d enums.IDeclarer) {
		d.Add("apple").Field("type", "Orchard").
			Add("pear").Field("type", "Orchard").
			Add("raspberry").Field("type", "Bramble").
			Add("tomato").Field("type", "Vine")
	})

	fmt.Println(fruit.Names())

	apple := fruit.MustNamed("apple")
	fmt.Println(apple)

	kind, _ := apple.Field("type")
	fmt.Println(kind)

	brambles := fruit.Filter(func(m enums.Member) bool {
		v, _ := m.Field("type")
		return v == "Bramble"
	})
	fmt.Println(brambles)

	j, _ := apple.ExportJSON()
	fmt.Println(string(j))

	// Output:
	// [apple pear raspberry tomato]
	// apple
	// Orchard
	// [raspberry]
	// {"name":"apple","type":"Orchard"}
}

func ExampleOf() {
	// Fruit is a declaration type: enums.Of[Fruit]() builds the enumeration
	// once per process and returns the same object on every later call.
	vines := enums.Of[Fruit]().Filter(func(m enums.Member) bool {
		v, _ := m.Field("type")
		return v == "Vine"
	})
	fmt.Println(vines)

	// Output:
	// [tomato]
}

func ExampleIEnum_NameOf() {
	codes := enums.Of[DialCode]()

	for _, v := range []any{"44", 44, 44.0, "99", nil, false} {
		if name, ok := codes.NameOf(v); ok {
			fmt.Printf("%#v resolves to «%s»\n", v, name)
		} else {
			fmt.Printf("%#v is not a member\n", v)
		}
	}

	// Output:
	// "44" resolves to «44»
	// 44 resolves to «44»
	// 44 resolves to «44»
	// "99" is not a member
	// <nil> is not a member
	// false is not a member
}
