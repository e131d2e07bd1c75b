package main

import (
	"os"

	"github.com/deadlyengineer/linq-with-go/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
