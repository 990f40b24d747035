package main

import "github.com/leoferlopes/google-cloud-tfs/cmd"

func main() {
	cmd.Execute()
}
