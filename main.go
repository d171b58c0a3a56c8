package main

import "github.com/AlexShukel/MullerCodes/cmd"

func main() {
	cmd.Execute()
}
