// Package server implements the MCP (Model Context Protocol) server for the
// image conversion engine.
//
// This package provides a JSON-RPC 2.0 server that exposes the converter
// through the MCP protocol, so MCP-compatible clients can convert images
// without linking the engine directly.
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
//   - image_convert: Convert an image file to a target format, optionally
//     resizing, and return the encoded payload plus metadata
//   - image_info: Get dimensions, format and alpha information for a file
//   - image_formats: List supported target formats and defaults
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
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
