package main

import "github.com/skolat/bewerberlisten/cmd/bewerberlisten/cmd"

func main() {
	cmd.Execute()
}
