package main

import (
	"flag"

	"github.com/edward-ap/minislider/internal/demoapp"
	"github.com/edward-ap/minislider/internal/player"
	"github.com/edward-ap/minislider/internal/slider"
)

var _ demoapp.Transport = (*player.Player)(nil)

func main() {
	trace := flag.Bool("traceLog", false, "trace slider events and write verbose libVLC logging to vlc.log")
	flag.Parse()
	slider.SetTraceLoggingEnabled(*trace)
	player.SetTraceLoggingEnabled(*trace)

	demoapp.NewApp(player.NewPlayer()).Run()
}
