// =============================================================================
// Raffle Ticket Generator - Main Entry Point
// =============================================================================
//
// This is the entry point for the raffle ticket generator CLI. It expands a
// point-of-sale line-item export into one output row per raffle ticket,
// following the promotion rules configured under configs/.
//
// USAGE:
//   raffle generate [input] [output]  - Generate tickets for a promotion
//   raffle missing  [input] [output]  - Report entries missing a customer id
//   raffle validate                   - Validate configuration without processing
//   raffle version                    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : core business logic (not for external import)
//   - pkg/       : shared utilities
//   - configs/   : per-promotion YAML configurations
//
// =============================================================================

package main

import (
	"github.com/kegworth-pc/raffle-tickets/cmd"
)

func main() {
	cmd.Execute()
}
