package main

import "github.com/dbsmedya/gomaze/cmd/gomaze/cmd"

func main() {
	cmd.Execute()
}
