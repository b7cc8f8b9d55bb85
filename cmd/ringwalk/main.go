// Command ringwalk runs particle transport simulations on a ring of
// capacity-limited nodes.
package main

import "github.com/sarchlab/ringwalk/cmd/ringwalk/cmd"

func main() {
	cmd.Execute()
}
