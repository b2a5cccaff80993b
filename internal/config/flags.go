package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-p/-port HTTP listen port
//	-public-dir directory of static frontend assets
//	-c/-config json file path with configs
//	-shutdown-timeout graceful shutdown drain timeout (e.g., "30s", "1m")
//	-oracle-concurrency max in-flight oracle calls per food item
func ParseFlags() *StructuredConfig {
	var port int
	var publicDir string
	var jsonConfigPath string
	var shutdownTimeout time.Duration
	var oracleConcurrency int

	flag.IntVar(&port, "p", 0, "HTTP listen port")
	flag.IntVar(&port, "port", 0, "HTTP listen port (alias)")
	flag.StringVar(&publicDir, "public-dir", "", "Static assets directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown drain timeout (e.g., 30s, 1m)")
	flag.IntVar(&oracleConcurrency, "oracle-concurrency", 0, "Max in-flight oracle calls per food item")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
			PublicDir:       publicDir,
		},
		Oracle: Oracle{
			MaxConcurrent: oracleConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}
}
