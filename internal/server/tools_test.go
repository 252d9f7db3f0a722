package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"color_convert",
		"color_match",
		"color_search_name",
		"color_harmony",
		"color_blindness",
		"color_contrast",
		"image_load",
		"image_dimensions",
		"image_sample_color",
		"image_average_color",
		"image_palette",
		"image_histogram",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	// Check all expected tools exist
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			// Name should not be empty
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}

			// Description should not be empty
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			// InputSchema should exist
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			// InputSchema should be an object type
			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			// InputSchema should have properties
			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	// Every image tool requires a 'path' parameter
	toolsRequiringPath := []string{
		"image_load",
		"image_dimensions",
		"image_sample_color",
		"image_average_color",
		"image_palette",
		"image_histogram",
	}

	tools := GetToolDefinitions()
	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range toolsRequiringPath {
		tool, ok := toolMap[name]
		if !ok {
			continue // Skip if tool not found
		}

		t.Run(name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"]
			if !ok {
				t.Error("InputSchema missing 'required' field")
				return
			}

			requiredList, ok := required.([]string)
			if !ok {
				t.Error("'required' should be a string slice")
				return
			}

			hasPath := false
			for _, r := range requiredList {
				if r == "path" {
					hasPath = true
					break
				}
			}

			if !hasPath {
				t.Error("Tool should require 'path' parameter")
			}
		})
	}
}

func TestToolDefinitions_RequiredColor(t *testing.T) {
	// Every single-color tool requires a 'color' parameter
	toolsRequiringColor := []string{
		"color_convert",
		"color_match",
		"color_harmony",
		"color_blindness",
	}

	tools := GetToolDefinitions()
	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range toolsRequiringColor {
		tool, ok := toolMap[name]
		if !ok {
			continue
		}

		t.Run(name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}

			hasColor := false
			for _, r := range required {
				if r == "color" {
					hasColor = true
					break
				}
			}
			if !hasColor {
				t.Error("Tool should require 'color' parameter")
			}
		})
	}
}

func TestToolDefinitions_HarmonySchemes(t *testing.T) {
	tools := GetToolDefinitions()

	var tool Tool
	for _, tt := range tools {
		if tt.Name == "color_harmony" {
			tool = tt
			break
		}
	}

	if tool.Name == "" {
		t.Fatal("color_harmony tool not found")
	}

	props, ok := tool.InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}

	schemeProp, ok := props["scheme"].(map[string]interface{})
	if !ok {
		t.Fatal("scheme property should exist and be a map")
	}

	enum, ok := schemeProp["enum"].([]string)
	if !ok {
		t.Fatal("scheme should have enum")
	}

	expectedSchemes := []string{
		"complementary", "triadic", "analogous", "split-complementary",
	}

	enumMap := make(map[string]bool)
	for _, e := range enum {
		enumMap[e] = true
	}

	for _, scheme := range expectedSchemes {
		if !enumMap[scheme] {
			t.Errorf("Expected scheme '%s' not in enum", scheme)
		}
	}
}

func TestToolDefinitions_BlindnessDeficiencies(t *testing.T) {
	tools := GetToolDefinitions()

	var tool Tool
	for _, tt := range tools {
		if tt.Name == "color_blindness" {
			tool = tt
			break
		}
	}

	if tool.Name == "" {
		t.Fatal("color_blindness tool not found")
	}

	props, ok := tool.InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}

	defProp, ok := props["deficiency"].(map[string]interface{})
	if !ok {
		t.Fatal("deficiency property should exist and be a map")
	}

	enum, ok := defProp["enum"].([]string)
	if !ok {
		t.Fatal("deficiency should have enum")
	}

	expected := []string{"protanopia", "deuteranopia", "tritanopia", "achromatopsia"}

	enumMap := make(map[string]bool)
	for _, e := range enum {
		enumMap[e] = true
	}
	for _, d := range expected {
		if !enumMap[d] {
			t.Errorf("Expected deficiency '%s' not in enum", d)
		}
	}

	// Deficiency is optional: omitting it simulates all four.
	if required, ok := tool.InputSchema["required"].([]string); ok {
		for _, r := range required {
			if r == "deficiency" {
				t.Error("deficiency should be optional")
			}
		}
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	tools := GetToolDefinitions()

	// Tools with optional parameters that should have defaults
	toolDefaults := map[string]map[string]interface{}{
		"color_match":         {"count": 1},
		"image_average_color": {"radius": 2},
		"image_palette":       {"count": 5},
		"image_histogram":     {"bins": 16},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for toolName, expectedDefaults := range toolDefaults {
		tool, ok := toolMap[toolName]
		if !ok {
			t.Errorf("Tool %s not found", toolName)
			continue
		}

		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Errorf("%s: properties should be a map", toolName)
			continue
		}

		for paramName, expectedDefault := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found or not a map", toolName, paramName)
				continue
			}

			actualDefault, ok := param["default"]
			if !ok {
				t.Errorf("%s.%s: missing default value", toolName, paramName)
				continue
			}

			if actualDefault != expectedDefault {
				t.Errorf("%s.%s: default got %v, want %v", toolName, paramName, actualDefault, expectedDefault)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	// Should match GetToolDefinitions
	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}

func TestToolStruct(t *testing.T) {
	tool := Tool{
		Name:        "test_tool",
		Description: "A test tool",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"param1": map[string]interface{}{
					"type":        "string",
					"description": "A test parameter",
				},
			},
			"required": []string{"param1"},
		},
	}

	if tool.Name != "test_tool" {
		t.Errorf("Name: got %s, want test_tool", tool.Name)
	}
	if tool.Description != "A test tool" {
		t.Errorf("Description: got %s, want 'A test tool'", tool.Description)
	}
	if tool.InputSchema == nil {
		t.Error("InputSchema should not be nil")
	}
}
