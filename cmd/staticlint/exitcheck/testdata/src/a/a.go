package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("exiting")
	os.Exit(1) // want "main.main must not call os.Exit directly"
}

func helper() {
	os.Exit(2) // calls outside main.main are fine
}
