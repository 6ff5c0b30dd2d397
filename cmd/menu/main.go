package main

import "github.com/cardapio/menu-api/pkg/cli"

func main() {
	cli.Execute()
}
