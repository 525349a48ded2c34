// Command pcst solves a Prize-Collecting Steiner Tree/Forest instance
// described in a YAML (or JSON) config file and prints the resulting
// vertex and edge sets.
package main

import "github.com/lvlath-labs/pcstfast/cmd/pcst/cmd"

func main() {
	cmd.Execute()
}
