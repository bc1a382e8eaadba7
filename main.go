package main

import "github.com/city58/jobharvest/cmd"

func main() {
	cmd.Execute()
}
