package service_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/AlenaMolokova/randkey/internal/app/models"
)

func BenchmarkCreatePreset(b *testing.B) {
	svc := newService()
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := svc.CreatePreset(ctx, models.PresetRequest{Name: "preset" + strconv.Itoa(i), Letters: "16", Symbols: "4", Digits: "4"})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoadGenerator(b *testing.B) {
	svc := newService()
	ctx := context.Background()
	if _, err := svc.CreatePreset(ctx, models.PresetRequest{Name: "wifi", Letters: "16", Symbols: "4", Digits: "4"}); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := svc.LoadGenerator(ctx, "wifi")
		if err != nil {
			b.Fatal(err)
		}
		if err := r.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}
