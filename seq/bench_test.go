package seq_test

import (
	"testing"

	"github.com/katalvlaran/lazuli/seq"
)

// BenchmarkRange measures bare iteration overhead over one million values.
func BenchmarkRange(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range seq.Range(0, 1000000) {
			sum += v
		}
		_ = sum
	}
}

// BenchmarkBaseN_Digits measures eager decomposition of a 63-bit value.
func BenchmarkBaseN_Digits(b *testing.B) {
	bn, err := seq.NewBaseN(2, 1<<62)
	if err != nil {
		b.Fatalf("setup NewBaseN failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bn.Digits()
	}
}

// BenchmarkPermut_All8 measures full enumeration of 8! = 40320 arrangements,
// including the per-arrangement snapshot allocation.
func BenchmarkPermut_All8(b *testing.B) {
	p := seq.NewPermut([]int{0, 1, 2, 3, 4, 5, 6, 7})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range p.All() {
			n++
		}
		if n != 40320 {
			b.Fatalf("enumerated %d arrangements; want 40320", n)
		}
	}
}
