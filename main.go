package main

import "github.com/mkrall/chat-import/cmd"

func main() {
	cmd.Execute()
}
