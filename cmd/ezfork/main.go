// Command ezfork runs fork-join computations on a fixed-size worker pool and
// reports how long they took.
package main

import "github.com/pgvanniekerk/ezfork/internal/cli"

func main() {
	cli.Execute()
}
