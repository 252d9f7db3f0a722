package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/extract"
	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/internal/namedcolor"
)

// paletteMaxDim is the longest image side fed to palette extraction. Larger
// images are downsampled first; clustering cost grows with distinct colors,
// not pixels, but flattening a huge image is still wasted work.
const paletteMaxDim = 256

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "image_palette").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate colorspace/namedcolor/extract/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Conversion and Naming
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_match":
		return s.handleColorMatch(args)
	case "color_search_name":
		return s.handleColorSearchName(args)
	case "color_harmony":
		return s.handleColorHarmony(args)
	case "color_blindness":
		return s.handleColorBlindness(args)
	case "color_contrast":
		return s.handleColorContrast(args)

	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Image Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_palette":
		return s.handleImagePalette(args)
	case "image_histogram":
		return s.handleImageHistogram(args)

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

// === Color Tool Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorspace.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}
	return colorspace.Convert(c), nil
}

type colorMatchArgs struct {
	Color string `json:"color"`
	Count int    `json:"count"`
}

type colorMatchResult struct {
	Query   string                   `json:"query"`
	Matches []namedcolor.MatchResult `json:"matches"`
}

func (s *Server) handleColorMatch(args json.RawMessage) (interface{}, error) {
	var a colorMatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 1
	}
	c, err := colorspace.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}
	matches, err := s.matcher.MatchK(c, a.Count)
	if err != nil {
		return nil, err
	}
	return &colorMatchResult{Query: c.Hex(), Matches: matches}, nil
}

type colorSearchNameArgs struct {
	Name string `json:"name"`
}

type colorSearchNameResult struct {
	namedcolor.Entry
	Formats colorspace.Formats `json:"formats"`
}

func (s *Server) handleColorSearchName(args json.RawMessage) (interface{}, error) {
	var a colorSearchNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	entry, ok := s.matcher.SearchName(a.Name)
	if !ok {
		return nil, fmt.Errorf("no color named %q", a.Name)
	}
	return &colorSearchNameResult{Entry: entry, Formats: colorspace.Convert(entry.Color)}, nil
}

type colorHarmonyArgs struct {
	Color  string `json:"color"`
	Scheme string `json:"scheme"`
}

type colorHarmonyResult struct {
	Scheme colorspace.Scheme    `json:"scheme"`
	Base   colorspace.Formats   `json:"base"`
	Colors []colorspace.Formats `json:"colors"`
}

func (s *Server) handleColorHarmony(args json.RawMessage) (interface{}, error) {
	var a colorHarmonyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorspace.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}
	derived, err := colorspace.Harmony(c, colorspace.Scheme(a.Scheme))
	if err != nil {
		return nil, err
	}

	colors := make([]colorspace.Formats, len(derived))
	for i, d := range derived {
		colors[i] = colorspace.Convert(d)
	}
	return &colorHarmonyResult{
		Scheme: colorspace.Scheme(a.Scheme),
		Base:   colorspace.Convert(c),
		Colors: colors,
	}, nil
}

type colorBlindnessArgs struct {
	Color      string `json:"color"`
	Deficiency string `json:"deficiency"`
}

type blindnessSimulation struct {
	Deficiency colorspace.Deficiency `json:"deficiency"`
	Simulated  colorspace.Formats    `json:"simulated"`
}

type colorBlindnessResult struct {
	Original    colorspace.Formats    `json:"original"`
	Simulations []blindnessSimulation `json:"simulations"`
}

func (s *Server) handleColorBlindness(args json.RawMessage) (interface{}, error) {
	var a colorBlindnessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colorspace.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}

	deficiencies := colorspace.Deficiencies()
	if a.Deficiency != "" {
		deficiencies = []colorspace.Deficiency{colorspace.Deficiency(a.Deficiency)}
	}

	sims := make([]blindnessSimulation, 0, len(deficiencies))
	for _, d := range deficiencies {
		sim, err := colorspace.SimulateBlindness(c, d)
		if err != nil {
			return nil, err
		}
		sims = append(sims, blindnessSimulation{Deficiency: d, Simulated: colorspace.Convert(sim)})
	}
	return &colorBlindnessResult{Original: colorspace.Convert(c), Simulations: sims}, nil
}

type colorContrastArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

type colorContrastResult struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	colorspace.ContrastResult
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	fg, err := colorspace.ParseHex(a.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := colorspace.ParseHex(a.Background)
	if err != nil {
		return nil, err
	}
	return &colorContrastResult{
		Foreground:     fg.Hex(),
		Background:     bg.Hex(),
		ContrastResult: colorspace.ContrastRatio(fg, bg),
	}, nil
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Image Color Operation Handlers ===

// sampledColor is the shared result shape for single-point color queries:
// where the sample was taken, every encoding of the color, and its closest
// named reference.
type sampledColor struct {
	X       int                    `json:"x"`
	Y       int                    `json:"y"`
	Radius  int                    `json:"radius,omitempty"`
	Color   colorspace.Formats     `json:"color"`
	Nearest namedcolor.MatchResult `json:"nearest_named"`
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	c, err := imaging.SampleAt(img, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &sampledColor{
		X:       a.X,
		Y:       a.Y,
		Color:   colorspace.Convert(c),
		Nearest: s.matcher.Match(c),
	}, nil
}

type imageAverageColorArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Radius int    `json:"radius"`
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageAverageColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius == 0 {
		a.Radius = 2
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	c, err := imaging.AverageAt(img, a.X, a.Y, a.Radius)
	if err != nil {
		return nil, err
	}
	return &sampledColor{
		X:       a.X,
		Y:       a.Y,
		Radius:  a.Radius,
		Color:   colorspace.Convert(c),
		Nearest: s.matcher.Match(c),
	}, nil
}

type imagePaletteArgs struct {
	Path   string `json:"path"`
	Count  int    `json:"count"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

type paletteColor struct {
	extract.Cluster
	Name string `json:"name"`
}

type imagePaletteResult struct {
	Colors      []paletteColor `json:"colors"`
	TotalPixels int            `json:"total_pixels"`
	Iterations  int            `json:"iterations"`
	Converged   bool           `json:"converged"`
}

func (s *Server) handleImagePalette(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	// A region is addressed in original coordinates, so it must be flattened
	// before any downsampling; whole images are downsampled first to bound the
	// clustering input.
	var pixels []colorspace.RGB
	if a.Region != nil {
		region := &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
		pixels, err = imaging.Pixels(img, region)
	} else {
		var small image.Image
		small, err = imaging.Downsample(img, paletteMaxDim)
		if err == nil {
			pixels, err = imaging.Pixels(small, nil)
		}
	}
	if err != nil {
		return nil, err
	}

	palette, err := extract.Extract(context.Background(), pixels, extract.Options{K: a.Count})
	if err != nil {
		return nil, err
	}

	colors := make([]paletteColor, len(palette.Clusters))
	for i, cl := range palette.Clusters {
		colors[i] = paletteColor{Cluster: cl, Name: s.matcher.Match(cl.Color).Name}
	}
	return &imagePaletteResult{
		Colors:      colors,
		TotalPixels: palette.Total,
		Iterations:  palette.Iterations,
		Converged:   palette.Converged,
	}, nil
}

type imageHistogramArgs struct {
	Path string `json:"path"`
	Bins int    `json:"bins"`
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageHistogramArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Bins == 0 {
		a.Bins = 16
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Histogram(img, a.Bins)
}
