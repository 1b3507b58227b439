package main

import "github.com/pageza/cookmate/backend/internal/cli"

func main() {
	cli.Execute()
}
