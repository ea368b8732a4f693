package config

import (
	"flag"
	"strconv"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-p/-port listening port for the TCP acceptor
//	-f snapshot file path
//	-c/-config json file path with configs
//
// A bare positional argument is also accepted as the port, so the server can
// be launched as `marketplace-server 9090`. A named -p flag takes precedence
// over the positional form.
func ParseFlags() *StructuredConfig {
	var port int
	var snapshotPath string
	var jsonConfigPath string

	flag.IntVar(&port, "p", 0, "Listening port")
	flag.IntVar(&port, "port", 0, "Listening port (alias)")
	flag.StringVar(&snapshotPath, "f", "", "Snapshot file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	if port == 0 && flag.NArg() > 0 {
		if positional, err := strconv.Atoi(flag.Arg(0)); err == nil {
			port = positional
		}
	}

	return &StructuredConfig{
		App: App{},
		Server: Server{
			Port: port,
		},
		Storage: Storage{
			Files: Files{
				SnapshotPath: snapshotPath,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
