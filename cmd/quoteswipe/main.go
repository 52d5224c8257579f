package main

import (
	"os"

	"github.com/csheth/quoteswipe/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
