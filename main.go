package main

import "github.com/duewise/backend/cmd"

func main() {
	cmd.Execute()
}
