package main

import (
	"github.com/iaksit/linux-timemachine/cmd"
)

func main() {
	cmd.Execute()
}
