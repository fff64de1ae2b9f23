package main

import (
	"github.com/sizebots/sizebot-go/cmd"
)

func main() {
	cmd.Execute()
}
