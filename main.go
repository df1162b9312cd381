package main

import "ampview/cmd"

func main() {
	cmd.Execute()
}
