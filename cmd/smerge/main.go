package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := Execute()
	if errors.Is(err, errConflictsDetected) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
