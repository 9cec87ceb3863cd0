package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses client flags from args (without the program name).
//
// Flags:
//
//	-a gateway address (URL or host:port)
//	-request-timeout gateway request timeout (e.g. "15s")
//	-d credential database DSN
//	-download-dir certificate download directory
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("event-portal", flag.ContinueOnError)

	var (
		address        string
		requestTimeout time.Duration
		dsn            string
		downloadDir    string
		jsonConfigPath string
	)

	fs.StringVar(&address, "a", "", "API gateway address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&dsn, "d", "", "Credential database DSN")
	fs.StringVar(&downloadDir, "download-dir", "", "Certificate download directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:          DB{DSN: dsn},
			DownloadDir: downloadDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
