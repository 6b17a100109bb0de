package google_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/okibi/sheets-mcp/internal/google"
	"github.com/okibi/sheets-mcp/internal/instrumentation"
	"github.com/okibi/sheets-mcp/internal/server"
	"github.com/okibi/sheets-mcp/internal/tools/common"
)

// RegisterGoogleTools registers the OAuth bootstrap tools with the MCP server
func RegisterGoogleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Get OAuth URL tool
	getAuthURLTool := mcp.NewTool("google_get_auth_url",
		mcp.WithDescription("Get the OAuth URL to authorize read-only Google Sheets and Drive access"),
	)

	s.AddTool(getAuthURLTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetAuthURL(ctx, request, sc)
	})

	// Save authorization code tool
	saveAuthCodeTool := mcp.NewTool("google_save_auth_code",
		mcp.WithDescription("Save the OAuth authorization code to complete Google authentication"),
		mcp.WithString("auth_code",
			mcp.Required(),
			mcp.Description("The authorization code from Google OAuth"),
		),
	)

	s.AddTool(saveAuthCodeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSaveAuthCode(ctx, request, sc)
	})

	return nil
}

func handleGetAuthURL(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	authURL := google.GetAuthURL()

	result := fmt.Sprintf(`To authorize read-only Google Sheets and Drive access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant read-only access to Sheets and Drive
4. Copy the authorization code

5. Call the google_save_auth_code tool with the code to complete authentication`, authURL)

	return mcp.NewToolResultText(result), nil
}

func handleSaveAuthCode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	authCode, err := common.RequiredString(request.GetArguments(), "auth_code")
	if err != nil {
		return common.ErrorResult(err), nil
	}

	if err := google.SaveToken(ctx, authCode); err != nil {
		if m := sc.Metrics(); m != nil {
			m.RecordOAuthAuth(ctx, instrumentation.OAuthResultFailure)
		}
		return common.ErrorResult(err), nil
	}

	if m := sc.Metrics(); m != nil {
		m.RecordOAuthAuth(ctx, instrumentation.OAuthResultSuccess)
	}

	// Drop cached clients so the next tool call picks up the new token
	sc.ResetClients()

	return mcp.NewToolResultText("Authorization successful. Google Sheets and Drive tools are now available with the saved token."), nil
}
