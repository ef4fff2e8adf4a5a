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

// parseFlags parses all configuration flags from args. Positional arguments
// that follow the flags are returned in [StructuredConfig.Args].
//
// Flags:
//
//	-a server HTTP address in format [host]:[port]
//	-grpc-address server gRPC address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cors-origins comma separated list of allowed origins
//	-rate-limit encrypt/decrypt requests per second
//	-rate-burst rate limiter burst
//	-pool-size number of concurrent key derivations
//	-version-tag application version reported by the info endpoint
//	-server client: service HTTP address
//	-server-grpc client: service gRPC address
//	-timeout client: request timeout
//	-i client: interactive form
//	-copy client: copy the result to the clipboard
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var requestTimeout, adapterTimeout time.Duration
	var corsOrigins string
	var rateLimit float64
	var rateBurst int
	var poolSize int
	var version string
	var adapterAddress, adapterGRPCAddress string
	var interactive, copyToClipboard bool
	var jsonConfigPath string

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated CORS origins")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Encrypt/decrypt requests per second, 0 disables")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Rate limiter burst")
	fs.IntVar(&poolSize, "pool-size", 0, "Concurrent key derivations, 0 means one per CPU")
	fs.StringVar(&version, "version-tag", "", "Application version")
	fs.StringVar(&adapterAddress, "server", "", "Service HTTP address")
	fs.StringVar(&adapterGRPCAddress, "server-grpc", "", "Service gRPC address")
	fs.DurationVar(&adapterTimeout, "timeout", 0, "Client request timeout")
	fs.BoolVar(&interactive, "i", false, "Interactive form")
	fs.BoolVar(&copyToClipboard, "copy", false, "Copy the result to the clipboard")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigins:    splitList(corsOrigins),
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Workers: Workers{
			DerivationPoolSize: poolSize,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			GRPCAddress:    adapterGRPCAddress,
			RequestTimeout: adapterTimeout,
		},
		Client: Client{
			Interactive:     interactive,
			CopyToClipboard: copyToClipboard,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
