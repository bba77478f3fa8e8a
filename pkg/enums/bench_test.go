/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums_test

import (
	"testing"

	"github.com/madison-web-solutions/go-enum/pkg/enums"
)

func BenchmarkNamed(b *testing.B) {
	fruit := enums.Of[Fruit]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fruit.Named("raspberry"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHas_String(b *testing.B) {
	fruit := enums.Of[Fruit]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !fruit.Has("raspberry") {
			b.Fatal("missed")
		}
	}
}

func BenchmarkHas_Numeric(b *testing.B) {
	codes := enums.Of[DialCode]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !codes.Has(44) {
			b.Fatal("missed")
		}
	}
}

func BenchmarkOf_Warm(b *testing.B) {
	enums.Of[Fruit]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enums.Of[Fruit]()
	}
}

func BenchmarkMembers(b *testing.B) {
	fruit := enums.Of[Fruit]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fruit.Members()
	}
}

func BenchmarkExportJSON(b *testing.B) {
	apple := enums.MustNamed[Fruit]("apple")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := apple.ExportJSON(); err != nil {
			b.Fatal(err)
		}
	}
}
