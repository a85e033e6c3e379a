package main

import "github.com/masmgr/revlog/cmd"

func main() {
	cmd.Run()
}
