package configs

// HTTP defines configuration for the operator HTTP surface. The server is
// optional because the dispatcher runs fine on its schedule alone.
type HTTP struct {
	// Enabled starts the HTTP server. Defaults to true.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
