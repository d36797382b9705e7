package main

import "github.com/assetsweep/assetsweep/internal/cli"

func main() {
	cli.Execute()
}
