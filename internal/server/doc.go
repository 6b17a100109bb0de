// Package server provides the MCP server context and operational HTTP
// endpoints for the sheets-mcp application.
//
// # Key Components
//
// ServerContext is the session value owning the process's single Google
// credential. At construction (or lazily on first use) it selects between
// an OAuth token and a static API key, builds the matching Sheets/Drive
// clients, and exposes them through capability-aware accessors: in key-only
// mode the Drive accessor reports a capability error instead of a client.
// The context is created once at startup and passed explicitly to every
// tool registration; nothing in the application holds it as global state.
//
// HTTPServer serves the streamable HTTP transport at /mcp together with
// the health endpoints. MetricsServer serves Prometheus metrics on a
// dedicated port, isolated from MCP traffic. HealthChecker provides the
// liveness and readiness handlers both servers mount.
package server
