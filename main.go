package main

import "vlogtagger/cmd"

func main() {
	cmd.Execute()
}
