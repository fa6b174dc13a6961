package config

import "time"

const (
	// DefaultHost is the target host used when none is given
	DefaultHost = "localhost"
	// Port is the well-known OSC port of the relay server. It is not configurable.
	Port = 57121
	// DefaultSettleDelay is the pause between the banner and the first send
	DefaultSettleDelay = time.Second
	// DefaultEnvFile is the dotenv file read at startup
	DefaultEnvFile = ".env"
	// DefaultListenAddr is where the listen command binds
	DefaultListenAddr = "127.0.0.1:57121"
)

// Environment variables read from the process environment or the dotenv file
const (
	EnvHost     = "OSCTEST_HOST"
	EnvSequence = "OSCTEST_SEQUENCE"
)
