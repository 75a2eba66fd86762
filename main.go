package main

import "voice-sync/cmd"

func main() {
	cmd.Execute()
}
