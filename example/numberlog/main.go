package main

import "github.com/jonoton/go-messenger/example/numberlog/cmd"

func main() {
	cmd.Execute()
}
