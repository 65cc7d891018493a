package main

import "github.com/jplacht/prunplanner-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
