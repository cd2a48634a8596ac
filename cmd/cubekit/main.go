// cubekit - CLI for scrambling, validating, and solving Rubik's cube states.
package main

import (
	"github.com/facelab/cubekit/internal/cli"
)

func main() {
	cli.Execute()
}
