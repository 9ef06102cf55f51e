package main

import "github.com/pfrederiksen/nfl-odds/internal/cli"

func main() {
	cli.Execute()
}
