/*
main.go - Application entry point

PURPOSE:
  Starts the PTO projector. The default command serves the HTTP API; the
  project and holidays subcommands run the engine once from the terminal.

STARTUP SEQUENCE:
  1. Load .env (if present) into the environment
  2. Load configuration (defaults, YAML file, PTO_* env overrides)
  3. Configure logging
  4. Build the holiday calendar, policy and engine
  5. Run the selected command

COMMANDS:
  server [serve]   HTTP API with graceful shutdown
  server project   Print a projection table
  server holidays  Print the active holiday calendar

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Serve on a different port
  ./server serve --port 3000

  # Project two vacation days
  ./server project --pto 40 --sick 16 --pto-rate 0.0577 --sick-rate 0.0333 \
      --date 2025-07-03 --date 2025-07-07

  # Use US federal holidays instead of the company list
  PTO_HOLIDAYS_SOURCE=us-federal ./server holidays

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Configuration keys
*/
package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Optional. Variables already set in the environment are not overridden.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
