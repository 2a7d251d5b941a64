package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_convert",
			Description: "Convert an image file to a target format, optionally resizing or cropping it. Returns the encoded result as a data URL plus the resolved mime type, byte size and output dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image file",
					},
					"target_format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"base64", "original", "png", "jpeg", "webp", "svg"},
						"description": "Output format. Omit, 'original' or 'base64' for passthrough of the source format",
					},
					"quality": map[string]interface{}{
						"type":        "number",
						"description": "Encoding quality in [0.1, 1] for jpeg/webp. Default 0.92",
						"default":     0.92,
					},
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum output width in pixels. Omit for no width bound",
					},
					"max_height": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum output height in pixels. Omit for no height bound",
					},
					"fit": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"contain", "cover"},
						"description": "Resize mode: 'contain' fits within bounds without upscaling, 'cover' fills bounds exactly and crops the centered excess. Default 'contain'",
						"default":     "contain",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Hex background color composited beneath transparency when encoding jpeg. Default '#ffffff'",
						"default":     "#ffffff",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_info",
			Description: "Get the dimensions, format, alpha channel presence and file size of an image without converting it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_formats",
			Description: "List the supported target formats, resize modes and engine defaults.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
