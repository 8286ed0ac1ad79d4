package main

import "github.com/theirongolddev/finplan/cmd"

func main() {
	cmd.Execute()
}
