package main

import "github.com/verbdrill/backend/internal/cli"

func main() {
	cli.Execute()
}
