package main

import (
	"os"

	"tarediiran-industries.com/gap-assist/internal/web/assist_web"
)

func main() {
	os.Exit(assist_web.Main(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}
