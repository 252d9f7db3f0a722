// Package server implements the MCP (Model Context Protocol) server for the color analysis tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color and image
// color analysis capabilities through the MCP protocol. It's designed to work
// with Claude and other MCP-compatible clients, enabling AI systems to reason
// about colors with precision.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server provides 12 color analysis tools organized into categories:
//
// Color Conversion and Naming:
//   - color_convert: Convert a color between hex, RGB, HSV, HSL and CMYK
//   - color_match: Find the closest named colors with confidence scores
//   - color_search_name: Look up a named color case-insensitively
//
// Color Relationships:
//   - color_harmony: Derive complementary, triadic, analogous or
//     split-complementary schemes
//   - color_blindness: Simulate color vision deficiencies
//   - color_contrast: WCAG contrast ratio and accessibility levels
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Image Color Operations:
//   - image_sample_color: Get color at pixel
//   - image_average_color: Mean color of a pixel neighborhood
//   - image_palette: Extract dominant colors via k-means clustering
//   - image_histogram: Per-channel intensity histograms
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	matcher, err := namedcolor.NewMatcher(namedcolor.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(matcher)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
