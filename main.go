package main

import (
	"fmt"
	"notely/cmd"
	"os"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "notely: %s\n", err)
		os.Exit(1)
	}
}
