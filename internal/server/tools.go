package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorProperty is the schema fragment shared by every tool that accepts a
// color argument: a hex string like "#ff8800" or "#f80".
func colorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
		"pattern":     "^#[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Conversion and Naming
		{
			Name:        "color_convert",
			Description: "Convert a color to all supported representations: hex, RGB, HSV, HSL, and CMYK.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color as hex (e.g. #ff8800)"),
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_match",
			Description: "Find the closest named colors to a given color. Returns matches ranked by distance with a confidence score.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color as hex (e.g. #ff8800)"),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of matches to return (default 1)",
						"default":     1,
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_search_name",
			Description: "Look up a color by its exact name (case-insensitive), e.g. 'Dodger Blue' or 'Red 500'.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Color name to look up",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "color_harmony",
			Description: "Generate a color harmony from a base color: complementary, triadic, analogous, or split-complementary.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Base color as hex"),
					"scheme": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"complementary", "triadic", "analogous", "split-complementary"},
						"description": "Harmony scheme to generate",
					},
				},
				"required": []string{"color", "scheme"},
			},
		},
		{
			Name:        "color_blindness",
			Description: "Simulate how a color appears under a color vision deficiency (protanopia, deuteranopia, tritanopia, achromatopsia).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": colorProperty("Color as hex"),
					"deficiency": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"protanopia", "deuteranopia", "tritanopia", "achromatopsia"},
						"description": "Deficiency to simulate. If omitted, simulates all four.",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_contrast",
			Description: "Compute the WCAG contrast ratio between two colors and report which accessibility levels the pair passes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": colorProperty("Foreground (text) color as hex"),
					"background": colorProperty("Background color as hex"),
				},
				"required": []string{"foreground", "background"},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and file size. Caches the decoded image for subsequent operations.",
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
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
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

		// Image Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the color value at a specific pixel coordinate, with conversions and the nearest named color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_average_color",
			Description: "Get the mean color of a square neighborhood around a pixel. Useful for noisy sources where a single pixel is unrepresentative.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Center X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Center Y coordinate (0-based)",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Neighborhood radius in pixels (default 2, window side 2*radius+1)",
						"default":     2,
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_palette",
			Description: "Extract the N dominant colors of an image via k-means clustering. Deterministic for a given image and count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of palette colors to extract (default 5)",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region to analyze. If omitted, analyzes entire image.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_histogram",
			Description: "Compute per-channel (red, green, blue) intensity histograms for an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"bins": map[string]interface{}{
						"type":        "integer",
						"description": "Number of histogram bins per channel, 1-256 (default 16)",
						"default":     16,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
