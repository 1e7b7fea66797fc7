package main

import "soloapp/cmd"

func main() {
	cmd.Execute()
}
