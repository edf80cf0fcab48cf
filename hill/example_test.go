package hill_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cipherlab/hill"
)

// ExampleEncrypt enciphers one block with the textbook key.
func ExampleEncrypt() {
	ct, _ := hill.Encrypt("act", "gybnqkurp")
	pt, _ := hill.Decrypt(ct, "gybnqkurp")
	fmt.Println(ct, pt)
	// Output: poh act
}

// ExampleDecrypt_invalidKey shows the failure for a singular key.
func ExampleDecrypt_invalidKey() {
	_, err := hill.Decrypt("poh", "abcdefghi")
	fmt.Println(errors.Is(err, hill.ErrInvalidKey))
	// Output: true
}

// ExampleInverseKeyMatrix prints K⁻¹ mod 26.
func ExampleInverseKeyMatrix() {
	inv, _ := hill.InverseKeyMatrix("gybnqkurp")
	fmt.Print(inv)
	// Output:
	// [8, 5, 10]
	// [21, 8, 21]
	// [21, 12, 8]
}
