package main

import "github.com/k1LoW/slicon/cmd"

func main() {
	cmd.Execute()
}
