package main

import "github.com/druvus/nanopore-format-checker/cmd/nanocheck/cmd"

func main() {
	cmd.Execute()
}
