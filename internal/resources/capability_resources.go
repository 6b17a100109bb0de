package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/okibi/sheets-mcp/internal/server"
)

// toolCapability describes one tool and the credential it needs.
type toolCapability struct {
	Name        string `json:"name"`
	Service     string `json:"service"`
	Description string `json:"description"`
	// RequiresOAuth marks tools that are unavailable in API-key mode
	RequiresOAuth bool `json:"requiresOauth"`
}

// toolCapabilities lists every spreadsheet tool the server registers.
// Drive discovery tools need OAuth; Sheets content tools also work with an
// API key against public spreadsheets.
var toolCapabilities = []toolCapability{
	{"list_spreadsheets", "drive", "List spreadsheets accessible to the authenticated user", true},
	{"search_spreadsheets_by_name", "drive", "Search spreadsheets by file name", true},
	{"read_sheet_data", "sheets", "Read cell values from a spreadsheet", false},
	{"get_sheet_metadata", "sheets", "Get spreadsheet metadata and sheet properties", false},
	{"list_sheets", "sheets", "List the sheets/tabs of a spreadsheet", false},
	{"search_sheet_data", "sheets", "Search cell values for a substring", false},
	{"get_range_data", "sheets", "Read cell values from an explicit A1 range", false},
}

// RegisterCapabilityResources registers the capability resource with the MCP
// server. Clients read it to learn which tools the active credential enables.
func RegisterCapabilityResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	capabilityResource := mcp.NewResource(
		"sheets://capabilities",
		"Server Capabilities",
		mcp.WithResourceDescription("The active authentication mode and the spreadsheet tools it enables"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(capabilityResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleCapabilities(ctx, request, sc)
	})

	return nil
}

func handleCapabilities(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	mode := sc.AuthMode()

	available := make([]toolCapability, 0, len(toolCapabilities))
	unavailable := make([]toolCapability, 0)
	for _, tc := range toolCapabilities {
		switch {
		case mode == server.AuthModeOAuth:
			available = append(available, tc)
		case mode == server.AuthModeAPIKey && !tc.RequiresOAuth:
			available = append(available, tc)
		default:
			unavailable = append(unavailable, tc)
		}
	}

	capabilityData := map[string]interface{}{
		"authMode":         string(mode),
		"availableTools":   available,
		"unavailableTools": unavailable,
	}

	jsonData, err := json.MarshalIndent(capabilityData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal capability data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
