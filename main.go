package main

import "github.com/collagekit/collage/cmd"

func main() {
	cmd.Execute()
}
