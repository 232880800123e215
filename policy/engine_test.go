package policy

import (
	"context"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(context.Background(), DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestNewEngineParsesDefaultPolicy(t *testing.T) {
	if _, err := NewEngine(context.Background(), DefaultPolicy); err != nil {
		t.Fatalf("expected default policy to prepare: %v", err)
	}
}

func TestDefaultPolicyAllowsAnonymousReads(t *testing.T) {
	engine := newTestEngine(t)

	allowed, err := engine.Allow(context.Background(), "", "GET")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if !allowed {
		t.Fatal("expected anonymous GET to be allowed")
	}
}

func TestDefaultPolicyDeniesAnonymousWrites(t *testing.T) {
	engine := newTestEngine(t)

	for _, method := range []string{"POST", "PUT", "DELETE"} {
		allowed, err := engine.Allow(context.Background(), "", method)
		if err != nil {
			t.Fatalf("Allow failed: %v", err)
		}
		if allowed {
			t.Fatalf("expected anonymous %s to be denied", method)
		}
	}
}

func TestDefaultPolicyAllowsAdminWrites(t *testing.T) {
	engine := newTestEngine(t)

	allowed, err := engine.Allow(context.Background(), "Admin", "POST")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if !allowed {
		t.Fatal("expected Admin POST to be allowed")
	}
}

func TestDefaultPolicyDeniesOtherRolesWrites(t *testing.T) {
	engine := newTestEngine(t)

	allowed, err := engine.Allow(context.Background(), "Viewer", "DELETE")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if allowed {
		t.Fatal("expected non-admin DELETE to be denied")
	}
}
