package main

import "github.com/nfrund/studiosite/cmd/studio-cli/cmd"

func main() {
	cmd.Execute()
}
