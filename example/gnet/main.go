package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/syslog"
	"github.com/lixenwraith/syslog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	// Ship gnet's own logs to a remote syslog collector
	client := syslog.NewClient()
	err := client.ApplyOverride(
		"server=127.0.0.1",
		"port=514",
		"app_name=echo",
		"min_level=debug",
	)
	if err != nil {
		panic(err)
	}
	defer client.Close()

	gnetAdapter := compat.NewGnetAdapter(client)

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
