// Command sliderprobe drives the slider engine without a window: it replays
// YAML scenarios, resolves single pointer positions and hosts a terminal
// slider.
package main

func main() {
	Execute()
}
