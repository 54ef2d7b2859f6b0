// ABOUTME: MCP resource implementations for the workout store.
// ABOUTME: Exposes the full data export and the active programme as JSON documents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "meso://export",
		Name:        "Full data export",
		Description: "Every exercise, programme, workout, set, record, and setting as JSON",
		MIMEType:    "application/json",
	}, s.handleExportResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "meso://programme/active",
		Name:        "Active programme",
		Description: "The active programme with its training days and prescriptions",
		MIMEType:    "application/json",
	}, s.handleActiveProgrammeResource)
}

func (s *Server) handleExportResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := s.repo.ExportJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to export data: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "meso://export",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleActiveProgrammeResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	_, out, err := s.handleGetActiveProgramme(ctx, nil, emptyInput{})
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal programme: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "meso://programme/active",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
