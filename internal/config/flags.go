package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
//	-session-secret session cookie signing key
//	-session-issuer session token issuer name
//	-session-duration session lifetime (e.g., "12h"), 0 for a browser session
//	-secure-cookie mark the session cookie as Secure
//	-bcrypt-cost bcrypt work factor
//	-log-level log level
//	-db-driver database driver (postgres, mysql, sqlite3)
//	-db-host, -db-port, -db-user, -db-password, -db-name database connection parameters
//	-d database DSN
func ParseFlags() *StructuredConfig {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg, _ := parseFlags(fs, os.Args[1:])

	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var jsonConfigPath string
	var sessionSecret, sessionIssuer string
	var sessionDuration time.Duration
	var secureCookie bool
	var bcryptCost int
	var logLevel string
	var dbDriver, dbHost, dbUser, dbPassword, dbName, databaseDSN string
	var dbPort int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session cookie signing key")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 12h)")
	fs.BoolVar(&secureCookie, "secure-cookie", false, "Send the session cookie over HTTPS only")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt work factor")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver (postgres, mysql, sqlite3)")
	fs.StringVar(&dbHost, "db-host", "", "Database host")
	fs.IntVar(&dbPort, "db-port", 0, "Database port")
	fs.StringVar(&dbUser, "db-user", "", "Database user")
	fs.StringVar(&dbPassword, "db-password", "", "Database password")
	fs.StringVar(&dbName, "db-name", "", "Database name")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSecret:   sessionSecret,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
			SecureCookie:    secureCookie,
			BcryptCost:      bcryptCost,
			LogLevel:        logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:   dbDriver,
				Host:     dbHost,
				Port:     dbPort,
				User:     dbUser,
				Password: dbPassword,
				Name:     dbName,
				DSN:      databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
