package main

import "github.com/KaramelBytes/statlens-cli/cmd"

func main() {
	cmd.Execute()
}
