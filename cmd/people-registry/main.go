// main is the entry point of the people-registry CLI.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file and the environment
//  2. Initialise the logger
//  3. Bind the record services to the configured data file
//  4. Run the requested command (the interactive menu by default)
//
// RUNNING:
//
//	go run ./cmd/people-registry --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/people-registry list student
package main

import (
	"os"

	"github.com/aanand-mishra/people-registry/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1) // non-zero exit code signals failure to the shell
	}
}
