package main

import "github.com/ByLCY/vellum/cmd"

func main() {
	cmd.Execute()
}
