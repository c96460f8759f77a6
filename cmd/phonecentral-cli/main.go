package main

import "phonecentral/cmd/phonecentral-cli/cmd"

func main() {
	cmd.Execute()
}
