package main

import "github.com/alexiusacademia/gopsc/cmd"

func main() {
	cmd.Execute()
}
