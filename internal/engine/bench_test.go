package engine

import (
	"context"
	"testing"
	"time"

	"github.com/osse101/fragrewards/internal/clock"
	"github.com/osse101/fragrewards/internal/domain"
)

func BenchmarkRegisterKill(b *testing.B) {
	clk := clock.NewSimulatedClock(start)
	e := New(DefaultConfig(), Dependencies{Clock: clk})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clk.Advance(500 * time.Millisecond)
		if _, err := e.RegisterKill(domain.KillStandard); err != nil {
			b.Fatal(err)
		}
		if i%64 == 0 {
			_ = e.Tick(context.Background(), clk.Now())
		}
	}
}

func BenchmarkSave(b *testing.B) {
	clk := clock.NewSimulatedClock(start)
	e := New(DefaultConfig(), Dependencies{Clock: clk})
	for i := 0; i < 50; i++ {
		_, _ = e.RegisterKill(domain.KillElite)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Save()
	}
}
