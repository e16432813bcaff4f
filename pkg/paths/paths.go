// =============================================================================
// Raffle Ticket Generator - Path Utilities
// =============================================================================
//
// Helpers for locating the input export and naming the output file. Kept out
// of internal/ so helper scripts around the draw can reuse them.
//
// =============================================================================

package paths

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FindInput returns the first existing path from the search list, or the
// fallback when none exists. The original workflow drops the Square export
// into a well-known location; the search list covers the usual spots so the
// command can run with no arguments.
func FindInput(searchPaths []string, fallback string) string {
	for _, path := range searchPaths {
		if Exists(path) {
			return path
		}
	}
	return fallback
}

// Exists reports whether a path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RenderOutputName expands the output name pattern for a promotion.
// Placeholders:
//
//	{promo}     - promotion name
//	{timestamp} - current time as YYYYMMDD_HHMMSS
//	{uuid}      - a random UUID, for draws that need unguessable file names
func RenderOutputName(pattern, promoName string) string {
	name := pattern
	name = strings.ReplaceAll(name, "{promo}", promoName)
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	return name
}

// OutputPath joins the output directory and the rendered output name.
func OutputPath(outputDir, pattern, promoName string) string {
	return filepath.Join(outputDir, RenderOutputName(pattern, promoName))
}
