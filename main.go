package main

import "github.com/theirongolddev/deeday/cmd"

func main() {
	cmd.Execute()
}
