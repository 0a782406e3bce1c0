package main

import "github.com/ponyo877/roomchat/server/cmd"

func main() {
	cmd.Execute()
}
