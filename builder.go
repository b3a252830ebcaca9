package syslog

// Builder provides a fluent API for building client configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Client instance with the specified configuration.
func (b *Builder) Build() (*Client, error) {
	if b.err != nil {
		return nil, b.err
	}

	client := NewClient()

	// Apply the built configuration. ApplyConfig handles validation and,
	// when a server is set, transport initialization.
	if err := client.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return client, nil
}

// Server sets the remote server address.
func (b *Builder) Server(address string) *Builder {
	b.cfg.Server = address
	return b
}

// Port sets the remote server port.
func (b *Builder) Port(port int64) *Builder {
	b.cfg.Port = port
	return b
}

// Facility sets the record facility.
func (b *Builder) Facility(facility int64) *Builder {
	b.cfg.Facility = facility
	return b
}

// FacilityString sets the record facility from a string.
func (b *Builder) FacilityString(facility string) *Builder {
	if b.err != nil {
		return b
	}
	facilityVal, err := Facility(facility)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Facility = facilityVal
	return b
}

// MinLevel sets the minimum log level.
func (b *Builder) MinLevel(level int64) *Builder {
	b.cfg.MinLevel = level
	return b
}

// MinLevelString sets the minimum log level from a string.
func (b *Builder) MinLevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.MinLevel = levelVal
	return b
}

// Hostname sets the record hostname field.
func (b *Builder) Hostname(hostname string) *Builder {
	b.cfg.Hostname = hostname
	return b
}

// AppName sets the record application name field.
func (b *Builder) AppName(name string) *Builder {
	b.cfg.AppName = name
	return b
}

// MaxMessageSize sets the record buffer capacity in bytes.
func (b *Builder) MaxMessageSize(size int64) *Builder {
	b.cfg.MaxMessageSize = size
	return b
}

// LineBufferSize sets the line accumulator capacity in bytes.
func (b *Builder) LineBufferSize(size int64) *Builder {
	b.cfg.LineBufferSize = size
	return b
}

// LockTimeoutMs sets the bounded guard acquisition wait.
func (b *Builder) LockTimeoutMs(timeout int64) *Builder {
	b.cfg.LockTimeoutMs = timeout
	return b
}

// FallbackTarget sets the local sink used when the transport path is
// unavailable: "stdout", "stderr", or "discard".
func (b *Builder) FallbackTarget(target string) *Builder {
	b.cfg.FallbackTarget = target
	return b
}

// Example usage:
//
//	client, err := syslog.NewBuilder().
//		Server("192.168.1.10").
//		Port(514).
//		FacilityString("local0").
//		MinLevelString("info").
//		AppName("crane").
//		Build()
//
//	if err == nil {
//		defer client.Close()
//		client.Infof("boot", "client initialized")
//	}
