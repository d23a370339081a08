package main

import "github.com/ideamans/iconforge/cmd/iconforge/cmd"

func main() {
	cmd.Execute()
}
