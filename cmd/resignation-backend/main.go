package main

import (
	"log"
	_ "time/tzdata"

	"github.com/futig/resignation-backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal("Application error: ", err)
	}
}
