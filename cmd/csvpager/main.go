package main

import (
	"log"
	"os"

	"github.com/litebase/csvpager/pkg/cli/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := cmd.NewRoot(); err != nil {
		os.Exit(1)
	}
}
