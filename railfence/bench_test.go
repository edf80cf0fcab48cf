package railfence_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cipherlab/railfence"
)

// BenchmarkEncode measures 10k runes on 7 rails.
func BenchmarkEncode(b *testing.B) {
	key, _ := railfence.NewKey(7)
	msg := strings.Repeat("we are discovered ", 556)
	b.ReportAllocs()
	b.SetBytes(int64(len(msg)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = railfence.Encode(key, msg)
	}
}

// BenchmarkDecode measures the inverse on the same input.
func BenchmarkDecode(b *testing.B) {
	key, _ := railfence.NewKey(7)
	ct, _ := railfence.Encode(key, strings.Repeat("we are discovered ", 556))
	b.ReportAllocs()
	b.SetBytes(int64(len(ct)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = railfence.Decode(key, ct)
	}
}
