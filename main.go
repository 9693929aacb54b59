package main

import "github.com/w31r4/gprocs/internal/cli"

func main() {
	cli.Execute()
}
