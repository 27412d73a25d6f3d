package main

import "sampledir/cmd"

func main() {
	cmd.Execute()
}
