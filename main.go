package main

import "head2head/cmd"

func main() {
	cmd.Execute()
}
