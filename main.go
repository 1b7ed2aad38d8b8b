package main

import "github.com/abhishek-pokhrel/DNSProbe/cmd"

func main() {
	cmd.Execute()
}
