package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/syslog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[syslog]
  server = "127.0.0.1"
  port = 514
  facility = 1      # user
  min_level = 5     # verbose
  app_name = "simple"
  max_message_size = 1024
  line_buffer_size = 1024
  lock_timeout_ms = 100
  fallback_target = "stdout"
`

func main() {
	fmt.Println("--- Simple Syslog Client Example ---")

	// --- Setup Config ---
	// Create dummy config file
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults potentially
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	// --- Initialize Client ---
	cfg, err := syslog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v. Using defaults.\n", err)
		cfg = syslog.DefaultConfig()
	}

	client := syslog.NewClient()
	if err := client.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure syslog client: %v\n", err)
		// Not fatal: the client degrades to the local fallback sink
	}
	fmt.Printf("Client ready: %v\n", client.IsReady())

	// --- Logging ---
	client.Infof("boot", "application starting, pid=%d\n", os.Getpid())
	client.Warningf("sensor", "threshold approaching: %.2f\n", 0.95)
	client.Errorf("io", "read failed: code=%d\n", 500)

	// Multi-chunk line assembly: one record per completed line
	client.Infof("boot", "loading modules: ")
	client.Infof("boot", "eth, rtc, adc\n")

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			client.Infof("worker", "goroutine %d started\n", id)
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			client.Infof("worker", "goroutine %d finished\n", id)
		}(i)
	}

	wg.Wait()
	fmt.Println("Goroutines finished.")

	// --- Shutdown ---
	if err := client.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Client close error: %v\n", err)
	}

	sent, failed := client.Stats()
	fmt.Printf("--- Example Finished: sent=%d failed=%d ---\n", sent, failed)
}
