package main

import cmd "github.com/seipan/kdtree/cmd/kdtree"

func main() {
	cmd.Execute()
}
