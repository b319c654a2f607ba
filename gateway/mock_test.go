package gateway

import (
	"context"
	"strings"
	"testing"

	"github.com/yl-doc/gearadvisor/domain"
	"github.com/yl-doc/gearadvisor/prompt"
)

func TestFactoryReturnsMockInMockMode(t *testing.T) {
	t.Setenv(EnvAdvisorMode, ModeMock)

	gen, err := NewGenerator(context.Background(), "", "", "test-model")
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	defer gen.Close()

	if _, ok := gen.(*MockClient); !ok {
		t.Fatalf("expected *MockClient, got %T", gen)
	}
}

func TestMockRepliesMatchRequestedShapes(t *testing.T) {
	m := NewMockClient()
	prompts := prompt.NewSet("")

	compare, err := m.Generate(context.Background(), &Request{Prompt: "对比A和B", SystemInstruction: prompts.Compare()})
	if err != nil {
		t.Fatalf("compare generate failed: %v", err)
	}
	ev, ok := domain.ParseReply(compare)
	if !ok || ev.Type != domain.EventProductCompare {
		t.Fatalf("compare reply did not parse as product_compare: %q", compare)
	}

	purchase, err := m.Generate(context.Background(), &Request{Prompt: "我想买", SystemInstruction: prompts.Purchase()})
	if err != nil {
		t.Fatalf("purchase generate failed: %v", err)
	}
	reply, ok := domain.ParsePurchaseReply(purchase)
	if !ok || len(reply.Items) == 0 {
		t.Fatalf("purchase reply did not parse: %q", purchase)
	}

	final, err := m.Generate(context.Background(), &Request{Prompt: "{}", SystemInstruction: prompts.Final()})
	if err != nil {
		t.Fatalf("final generate failed: %v", err)
	}
	if !strings.HasPrefix(final, "结论") {
		t.Fatalf("expected a conclusion, got %q", final)
	}
}

func TestMockHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewMockClient().Generate(ctx, &Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected error on cancelled context")
	}
}
