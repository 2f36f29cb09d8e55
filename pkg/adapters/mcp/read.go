// Package mcp exposes the note vault to MCP clients over stdio.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"scrib/pkg/core"
)

// RegisterReadTools adds all read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, svc *core.Service) {
	s.AddTool(listTool(), listHandler(svc))
	s.AddTool(getTool(), getHandler(svc))
	s.AddTool(tagsTool(), tagsHandler(svc))
}

// --- list_notes ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List notes. Supports a case-insensitive text query, tag filters (comma separated, globs allowed) and a sort mode."),
		mcp.WithString("query",
			mcp.Description("Substring matched against title, content and tags"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tag filters; a note must match every term (e.g. 'work/*,urgent')"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort mode: updated (default), created, or title"),
		),
	)
}

func listHandler(svc *core.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := core.Query{
			Text: req.GetString("query", ""),
			Tags: splitTags(req.GetString("tags", "")),
			Sort: core.ParseSortMode(req.GetString("sort", "")),
		}

		notes, err := svc.List(ctx, q)
		if err != nil {
			return toolError(err)
		}
		if len(notes) == 0 {
			return mcp.NewToolResultText("No notes found."), nil
		}

		var sb strings.Builder
		for _, n := range notes {
			sb.WriteString(formatNoteLine(n))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_note ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_note",
		mcp.WithDescription("Read a single note by its ID, including content."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
	)
}

func getHandler(svc *core.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		n, err := svc.Get(ctx, id)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "# %s\n", n.Title)
		fmt.Fprintf(&sb, "id: %s\n", n.ID)
		if len(n.Tags) > 0 {
			fmt.Fprintf(&sb, "tags: %s\n", strings.Join(n.Tags, ", "))
		}
		fmt.Fprintf(&sb, "updated: %s\n\n", n.UpdatedAt.Format("2006-01-02 15:04"))
		sb.WriteString(n.Content)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_tags ---

func tagsTool() mcp.Tool {
	return mcp.NewTool("list_tags",
		mcp.WithDescription("List every tag in the vault with the number of notes carrying it."),
	)
}

func tagsHandler(svc *core.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tags, err := svc.Tags(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(tags) == 0 {
			return mcp.NewToolResultText("No tags."), nil
		}

		var sb strings.Builder
		for _, tc := range tags {
			fmt.Fprintf(&sb, "%s (%d)\n", tc.Name, tc.Count)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatNoteLine(n core.Note) string {
	line := fmt.Sprintf("%s  %s", n.ID, n.Title)
	if len(n.Tags) > 0 {
		line += "  [" + strings.Join(n.Tags, ", ") + "]"
	}
	return line
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	return core.NormalizeTags(parts)
}
