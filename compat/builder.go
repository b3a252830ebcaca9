package compat

import (
	"fmt"

	"github.com/lixenwraith/syslog"
)

// Builder provides a flexible way to create configured logger adapters for gnet and fasthttp
// It can use an existing *syslog.Client instance or create a new one from a *syslog.Config
type Builder struct {
	client *syslog.Client
	cfg    *syslog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithClient specifies an existing client to use for the adapters
// Recommended for applications that already have a central syslog client
// If this is set WithConfig is ignored
func (b *Builder) WithClient(c *syslog.Client) *Builder {
	if c == nil {
		b.err = fmt.Errorf("syslog/compat: provided client cannot be nil")
		return b
	}
	b.client = c
	return b
}

// WithConfig provides a configuration for a new client instance
// This is used only if an existing client is NOT provided via WithClient
// If neither WithClient nor WithConfig is used, a default client will be created
func (b *Builder) WithConfig(cfg *syslog.Config) *Builder {
	b.cfg = cfg
	return b
}

// getClient resolves the client to be used, creating one if necessary
func (b *Builder) getClient() (*syslog.Client, error) {
	if b.err != nil {
		return nil, b.err
	}

	// An existing client was provided, so we use it
	if b.client != nil {
		return b.client, nil
	}

	// Create a new client instance
	c := syslog.NewClient()
	cfg := b.cfg
	if cfg == nil {
		// If no config was provided, use the default
		cfg = syslog.DefaultConfig()
	}

	// Apply the configuration
	if err := c.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	// Cache the newly created client for subsequent builds with this builder
	b.client = c
	return c, nil
}

// BuildGnet creates a gnet adapter
// It can be used for servers that require a standard gnet logger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	c, err := b.getClient()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(c, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	c, err := b.getClient()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(c, opts...), nil
}

// GetClient returns the underlying *syslog.Client instance
// If a client has not been provided or created yet, it will be initialized
func (b *Builder) GetClient() (*syslog.Client, error) {
	return b.getClient()
}

// --- Example Usage ---
//
// The following demonstrates how to route gnet and fasthttp server logs
// to a remote syslog collector using a single, shared client instance
//
//	// 1. Create and configure the application's syslog client
//	client := syslog.NewClient()
//	if err := client.Configure("192.168.1.10", 514); err != nil {
//		panic(fmt.Sprintf("failed to configure syslog client: %v", err))
//	}
//
//	// 2. Create a builder and provide the existing client
//	builder := compat.NewBuilder().WithClient(client)
//
//	// 3. Build the required adapters
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	// 4. Configure your servers with the adapters
//
//	// For gnet:
//	var events gnet.EventHandler // your-event-handler
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	// For fasthttp:
//	server := &fasthttp.Server{
//		Handler: func(ctx *fasthttp.RequestCtx) {
//			ctx.WriteString("Hello, world!")
//		},
//		Logger: fasthttpLogger,
//	}
//	go server.ListenAndServe(":8080")
