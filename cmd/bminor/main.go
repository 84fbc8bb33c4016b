package main

import "github.com/bminor-lang/bminor/cmd/bminor/cmd"

func main() {
	cmd.Execute()
}
