package services

import (
	"context"
	"testing"
)

func TestStubEnhancer_Transform(t *testing.T) {
	out, err := StubEnhancer{}.Enhance(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Enhance error: %v", err)
	}
	if out != "Processed: hello + AI Magic" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFromEnv_Selection(t *testing.T) {
	t.Setenv("OPENROUTER_KEY", "")
	if _, ok := FromEnv().(StubEnhancer); !ok {
		t.Fatal("expected stub enhancer without OPENROUTER_KEY")
	}

	t.Setenv("OPENROUTER_KEY", "test-key")
	if _, ok := FromEnv().(*OpenRouterEnhancer); !ok {
		t.Fatal("expected OpenRouter enhancer with OPENROUTER_KEY set")
	}
}
