package main

import (
	"os"

	"tarediiran-industries.com/gap-assist/internal/headless"
)

func main() {
	os.Exit(headless.Main(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}
