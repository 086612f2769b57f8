package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		errorf("whisker: %v", err)
		os.Exit(1)
	}
}
