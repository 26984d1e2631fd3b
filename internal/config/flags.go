package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-version application version
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-cors-origins comma separated list of allowed origins
//	-rate-limit-rps per-client requests per second (0 disables)
//	-rate-limit-burst per-client burst size
//	-shards number of repository shards
//	-no-seed start without the demo users
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("user-directory", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var version string
	var requestTimeout, shutdownTimeout time.Duration
	var corsOrigins string
	var rateLimitRPS float64
	var rateLimitBurst int
	var shards int
	var noSeed bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.Float64Var(&rateLimitRPS, "rate-limit-rps", 0, "Per-client requests per second (0 disables)")
	fs.IntVar(&rateLimitBurst, "rate-limit-burst", 0, "Per-client burst size")
	fs.IntVar(&shards, "shards", 0, "Number of repository shards")
	fs.BoolVar(&noSeed, "no-seed", false, "Start without the demo users")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  splitList(corsOrigins),
			RateLimitRPS:    rateLimitRPS,
			RateLimitBurst:  rateLimitBurst,
		},
		Storage: Storage{
			Memory: Memory{
				Shards:       shards,
				SkipDemoSeed: noSeed,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns host:port, or an empty string when neither Host nor Port
// is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port into a. The host may be empty (all interfaces),
// "localhost" or a literal IPv4/IPv6 address; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
