package main

import "github.com/geonet-ai/geonet/cmd"

func main() {
	cmd.Execute()
}
