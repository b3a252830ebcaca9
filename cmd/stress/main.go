package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/syslog"
)

const (
	logsPerWorker  = 1000
	maxMessageSize = 2000
	numWorkers     = 50
)

var levels = []int64{
	syslog.LevelError,
	syslog.LevelWarning,
	syslog.LevelInfo,
	syslog.LevelDebug,
	syslog.LevelVerbose,
}

var client *syslog.Client

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

func main() {
	fmt.Println("--- Syslog Stress Test ---")

	server := "127.0.0.1"
	if len(os.Args) > 1 {
		server = os.Args[1]
	}

	var err error
	client, err = syslog.NewBuilder().
		Server(server).
		Port(514).
		AppName("stress").
		MinLevel(syslog.LevelVerbose).
		FallbackTarget("discard").
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var dropped atomic.Uint64
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			tag := fmt.Sprintf("worker%d", id)
			for i := 0; i < logsPerWorker; i++ {
				level := levels[rand.Intn(len(levels))]
				msg := generateRandomMessage(rand.Intn(maxMessageSize) + 1)
				if !client.Linef(level, tag, "%s\n", msg) {
					dropped.Add(1)
				}
			}
		}(w)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case sig := <-sigChan:
		fmt.Printf("Interrupted by %v\n", sig)
	}

	elapsed := time.Since(start)
	sent, failed := client.Stats()
	fmt.Printf("--- Finished in %v: sent=%d failed=%d dropped=%d (%.0f records/s) ---\n",
		elapsed, sent, failed, dropped.Load(), float64(sent)/elapsed.Seconds())
}
