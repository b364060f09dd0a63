// Rubiks - CLI playground for NxNxN Rubik's cube states.
package main

import (
	"github.com/HaineSensei/rubiks-cube-representation/internal/cli"
)

func main() {
	cli.Execute()
}
