//go:build integration

package github

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestFindManifest_Integration(t *testing.T) {
	client := NewClient(os.Getenv("GITHUB_TOKEN"), "", 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	item, err := client.FindManifest(ctx, "pallets", "flask", func(name string) bool {
		return name == "requirements.txt" || name == "package.json"
	})
	if err != nil {
		t.Skipf("flask has no supported manifest at its root: %v", err)
	}
	content, err := client.Download(ctx, item)
	if err != nil {
		t.Fatalf("Download() error: %v", err)
	}
	if content == "" {
		t.Error("manifest content should not be empty")
	}
}

func TestFetchAlerts_Integration(t *testing.T) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		t.Skip("GITHUB_TOKEN not set, skipping integration test")
	}
	client := NewClient(token, "", 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := client.FetchAlerts(ctx, "angular", "angular"); err != nil {
		t.Fatalf("FetchAlerts() error: %v", err)
	}
}
