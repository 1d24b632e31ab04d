package main

import (
	"os"

	"github.com/uw-it-aca/restclients-nws/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
