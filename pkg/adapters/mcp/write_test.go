package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"scrib/pkg/adapters/localfile"
	"scrib/pkg/core"
)

// newCallToolRequest builds a tool call request with arguments.
func newCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func setupWriteService(t *testing.T) *core.Service {
	t.Helper()
	return core.NewService(localfile.NewStore(localfile.Config{
		Path:     t.TempDir(),
		AutoInit: true,
	}))
}

func TestUpdateHandler_KeepsOmittedFields(t *testing.T) {
	svc := setupWriteService(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, "Groceries", "milk and eggs", []string{"home"})
	if err != nil {
		t.Fatal(err)
	}

	result, err := updateHandler(svc)(ctx, newCallToolRequest("update_note", map[string]any{
		"id":    n.ID,
		"title": "Groceries v2",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result)
	}

	got, err := svc.Get(ctx, n.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Groceries v2" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
	if got.Content != "milk and eggs" {
		t.Errorf("omitted content was not preserved, got %q", got.Content)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "home" {
		t.Errorf("omitted tags were not preserved, got %v", got.Tags)
	}
}

func TestUpdateHandler_EmptyTagsClearsSet(t *testing.T) {
	svc := setupWriteService(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, "Standup", "blocked", []string{"work"})
	if err != nil {
		t.Fatal(err)
	}

	// Passing tags explicitly, even empty, replaces the set.
	result, err := updateHandler(svc)(ctx, newCallToolRequest("update_note", map[string]any{
		"id":   n.ID,
		"tags": "",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result)
	}

	got, err := svc.Get(ctx, n.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Tags) != 0 {
		t.Errorf("expected tags cleared, got %v", got.Tags)
	}
	if got.Title != "Standup" || got.Content != "blocked" {
		t.Errorf("untouched fields changed: %q / %q", got.Title, got.Content)
	}
}

func TestUpdateHandler_UnknownID(t *testing.T) {
	svc := setupWriteService(t)

	result, err := updateHandler(svc)(context.Background(), newCallToolRequest("update_note", map[string]any{
		"id":    "missing",
		"title": "nope",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected a tool error for an unknown note ID")
	}
}
