package main

import "iban-gen/cmd"

func main() {
	cmd.Execute()
}
