package gateway

import (
	"context"
	"fmt"
	"strings"
)

// MockClient is an offline Generator for local runs and tests. It inspects the
// system instruction to produce a reply of the shape the pipeline asked for.
type MockClient struct{}

// NewMockClient creates a new mock generator.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Generate returns a canned reply matching the requested output mode.
func (m *MockClient) Generate(ctx context.Context, req *Request) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	switch {
	case strings.Contains(req.SystemInstruction, "产品对比输出模式"):
		return `{"type":"product_compare","data":{"focus":"通勤舒适性","items":[{"name":"A","pros":["轻"],"cons":["贵"]},{"name":"B","pros":["便宜"],"cons":["重"]}],"suggestion":"先选 A"}}`, nil
	case strings.Contains(req.SystemInstruction, "最终购买结论"):
		return "结论：先买 A。\n原因：更符合当前需求。\n下一步：是否需要我帮你补齐 B？", nil
	case strings.Contains(req.SystemInstruction, "购买推荐输出模式"):
		return `{"summary":"先买一双入门跑鞋即可。","items":[{"id":"running_shoes","name":"入门跑鞋","brand":"示例品牌","official_site":"https://example.com","search_hint":"入门 跑鞋","reason":"降低受伤风险","category":"base_layer"}]}`, nil
	default:
		return fmt.Sprintf("[MOCK] 收到消息：%s", truncate(req.Prompt, 100)), nil
	}
}

// Close is a no-op for the mock.
func (m *MockClient) Close() error {
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
