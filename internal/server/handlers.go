package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/imgpipe/imgpipe/internal/convert"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_convert":
		return s.handleImageConvert(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_formats":
		return s.handleImageFormats(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Conversion ===

type imageConvertArgs struct {
	Path         string  `json:"path"`
	TargetFormat string  `json:"target_format"`
	Quality      float64 `json:"quality"`
	MaxWidth     int     `json:"max_width"`
	MaxHeight    int     `json:"max_height"`
	Fit          string  `json:"fit"`
	Background   string  `json:"background"`
}

func (s *Server) handleImageConvert(args json.RawMessage) (interface{}, error) {
	var a imageConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	opts := convert.Options{
		TargetFormat: convert.Format(a.TargetFormat),
		Quality:      a.Quality,
		Background:   a.Background,
	}
	if a.MaxWidth > 0 || a.MaxHeight > 0 || a.Fit != "" {
		opts.Resize = &convert.ResizeOptions{
			MaxWidth:  a.MaxWidth,
			MaxHeight: a.MaxHeight,
			Fit:       convert.Fit(a.Fit),
		}
	}

	return s.conv.Convert(convert.Input{
		Data:     data,
		Mime:     mimeFromPath(a.Path),
		FileName: filepath.Base(a.Path),
	}, opts)
}

// === Metadata ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

// ImageInfoResult contains metadata about an image file.
type ImageInfoResult struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"`
	Mime          string `json:"mime"`
	HasAlpha      bool   `json:"has_alpha"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &ImageInfoResult{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		Mime:          mimeFromPath(a.Path),
		HasAlpha:      modelHasAlpha(cfg.ColorModel),
		FileSizeBytes: int64(len(data)),
	}, nil
}

// modelHasAlpha reports whether a color model carries an alpha channel.
func modelHasAlpha(m color.Model) bool {
	switch m {
	case color.RGBAModel, color.NRGBAModel, color.RGBA64Model, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}

// === Catalog ===

// FormatsResult lists what the engine supports and its defaults.
type FormatsResult struct {
	TargetFormats     []string `json:"target_formats"`
	FitModes          []string `json:"fit_modes"`
	DefaultQuality    float64  `json:"default_quality"`
	DefaultBackground string   `json:"default_background"`
}

func (s *Server) handleImageFormats(json.RawMessage) (interface{}, error) {
	return &FormatsResult{
		TargetFormats:     []string{"base64", "original", "png", "jpeg", "webp", "svg"},
		FitModes:          []string{"contain", "cover"},
		DefaultQuality:    convert.DefaultQuality,
		DefaultBackground: convert.DefaultBackground,
	}, nil
}

// mimeFromPath maps a file extension to a media type. Extensions the engine
// knows get a fixed mapping; anything else falls through to the platform
// mime table and may come back empty.
func mimeFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".svg":
		return "image/svg+xml"
	}
	return mime.TypeByExtension(filepath.Ext(path))
}
