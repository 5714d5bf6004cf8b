package main

import (
	"github.com/evolens/cadence/cmd"
)

func main() {
	cmd.Execute()
}
