// Command cipherlab encrypts and decrypts text with the Playfair, Hill and
// Rail Fence ciphers.
package main

import (
	"os"

	"github.com/katalvlaran/cipherlab/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], cli.StdStreams()))
}
