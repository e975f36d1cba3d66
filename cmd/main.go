package main

import "github.com/DanRulev/uniprep.git/internal/cli"

func main() {
	cli.Execute()
}
