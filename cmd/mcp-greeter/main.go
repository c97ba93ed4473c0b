package main

import (
	"github.com/mcplabs/mcp-greeter/cmd/mcp-greeter/cmd"
)

func main() {
	cmd.Execute()
}
