// Cubesim - animated Rubik's Cube simulator with shuffle sessions.
package main

import (
	"github.com/cubelab/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
