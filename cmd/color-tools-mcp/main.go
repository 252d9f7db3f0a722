package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/namedcolor"
	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-tools-mcp - MCP server for color analysis")
			fmt.Println()
			fmt.Println("Usage: color-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOR_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  COLOR_MCP_MATCH_METRIC=lab   Match named colors in CIE Lab space")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("COLOR_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Color MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	dataset, err := namedcolor.Default()
	if err != nil {
		log.Fatalf("Failed to load reference colors: %v", err)
	}

	var opts []namedcolor.Option
	if os.Getenv("COLOR_MCP_MATCH_METRIC") == "lab" {
		opts = append(opts, namedcolor.WithMetric(namedcolor.MetricLab))
	}
	matcher, err := namedcolor.NewMatcher(dataset, opts...)
	if err != nil {
		log.Fatalf("Failed to index reference colors: %v", err)
	}
	if logLevel == "debug" {
		log.Printf("Indexed %d reference colors", dataset.Len())
	}

	srv := server.New(matcher)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
