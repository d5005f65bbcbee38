package main

import "github.com/Ahmed-As3ad/e-commerce/internal/cli"

func main() {
	cli.Execute()
}
