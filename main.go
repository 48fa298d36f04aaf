package main

import "github.com/mouse-blink/weather-explorer/cmd"

func main() {
	cmd.Execute()
}
