package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/syslog"
	"github.com/lixenwraith/syslog/compat"
)

func main() {
	// Create and configure the syslog client
	client, err := syslog.NewBuilder().
		Server("127.0.0.1").
		Port(514).
		FacilityString("local0").
		AppName("webserver").
		MinLevelString("info").
		Build()
	if err != nil {
		panic(err)
	}
	defer client.Close()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		client,
		compat.WithDefaultLevel(syslog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	// Custom logic to detect log levels
	// Can inspect specific fasthttp message patterns

	if strings.Contains(msg, "connection cannot be served") {
		return syslog.LevelWarning
	}
	if strings.Contains(msg, "error when serving connection") {
		return syslog.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
