package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"scrib/pkg/core"
)

// RegisterWriteTools adds the mutating vault tools to the MCP server.
// Do not register these when the vault is read-only; the tools simply
// should not exist in that mode.
func RegisterWriteTools(s *server.MCPServer, svc *core.Service) {
	s.AddTool(createTool(), createHandler(svc))
	s.AddTool(updateTool(), updateHandler(svc))
	s.AddTool(deleteTool(), deleteHandler(svc))
}

// --- create_note ---

func createTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note."),
		mcp.WithString("title",
			mcp.Description("Note title"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Note body"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags"),
		),
	)
}

func createHandler(svc *core.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := req.GetString("title", "")
		if title == "" {
			return toolError(fmt.Errorf("title is required"))
		}

		n, err := svc.Create(ctx, title, req.GetString("content", ""), splitTags(req.GetString("tags", "")))
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Created note %s", n.ID)), nil
	}
}

// --- update_note ---

func updateTool() mcp.Tool {
	return mcp.NewTool("update_note",
		mcp.WithDescription("Update an existing note. Omitted fields keep their current value; the ID never changes and the update timestamp is refreshed."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithString("content",
			mcp.Description("New body"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags, replacing the existing set"),
		),
	)
}

func updateHandler(svc *core.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		current, err := svc.Get(ctx, id)
		if err != nil {
			return toolError(err)
		}

		// Only fields present in the call change; an absent argument is
		// not an empty one.
		title := current.Title
		content := current.Content
		tags := current.Tags
		args := req.GetArguments()
		if _, ok := args["title"]; ok {
			title = req.GetString("title", "")
		}
		if _, ok := args["content"]; ok {
			content = req.GetString("content", "")
		}
		if _, ok := args["tags"]; ok {
			tags = splitTags(req.GetString("tags", ""))
		}

		n, err := svc.Update(ctx, id, title, content, tags)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Updated note %s", n.ID)), nil
	}
}

// --- delete_note ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Permanently delete a note by its ID."),
		mcp.WithString("id",
			mcp.Description("Note ID"),
			mcp.Required(),
		),
	)
}

func deleteHandler(svc *core.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		if err := svc.Delete(ctx, id); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Deleted note %s", id)), nil
	}
}
