package alphabeta_test

import (
	"testing"

	"github.com/emoryjianghang/eesen/alphabeta"
	"github.com/emoryjianghang/eesen/latbuild"
)

func BenchmarkCompute_Viterbi(b *testing.B) {
	clat, err := latbuild.RandomCompact(2000, latbuild.WithSeed(1), latbuild.WithMaxArcsPerState(6))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := alphabeta.Compute(clat, true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompute_Log(b *testing.B) {
	clat, err := latbuild.RandomCompact(2000, latbuild.WithSeed(1), latbuild.WithMaxArcsPerState(6))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := alphabeta.Compute(clat, false); err != nil {
			b.Fatal(err)
		}
	}
}
