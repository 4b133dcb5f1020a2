package main

import "github.com/arl/pocketgen/cmd/pocketgen/cmd"

func main() {
	cmd.Execute()
}
