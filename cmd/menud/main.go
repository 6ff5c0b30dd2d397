package main

import (
	"log"

	"github.com/cardapio/menu-api/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
