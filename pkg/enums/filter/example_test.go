/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package filter_test

import (
	"fmt"

	"github.com/madison-web-solutions/go-enum/pkg/enums"
	"github.com/madison-web-solutions/go-enum/pkg/enums/filter"
)

func Example() {
	fruit := enums.MustNew("Fruit", func(d enums.IDeclarer) {
		d.Add("apple").Field("type", "Orchard").
			Add("pear").Field("type", "Orchard").
			Add("raspberry").Field("type", "Bramble").
			Add("tomato").Field("type", "Vine")
	})

	flt := filter.Or(
		filter.FieldEquals("type", "Bramble"),
		filter.FieldEquals("type", "Vine"))

	fmt.Println(flt)
	fmt.Println(fruit.Filter(flt.Match))

	// Output:
	// filter Or(filter FieldEquals «type» = «Bramble», filter FieldEquals «type» = «Vine»)
	// [raspberry tomato]
}
