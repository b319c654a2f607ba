package prompt

import (
	"fmt"
	"strings"

	"github.com/yl-doc/gearadvisor/domain"
)

// Assemble builds the freeform prompt body: profile block, a history section
// with one ROLE: line per prior turn in append order, then the current message
// as the final USER: line.
func Assemble(profileBlock string, history []domain.Turn, message string) string {
	lines := []string{profileBlock, "", "【历史对话】"}
	for _, t := range history {
		lines = append(lines, strings.ToUpper(string(t.Role))+": "+t.Content)
	}
	lines = append(lines, "USER: "+message)
	return strings.Join(lines, "\n")
}

// CompareContext serializes caller-selected compare items into an enumerated
// list under the profile block.
func CompareContext(profileBlock string, items []domain.CompareItem) string {
	lines := []string{profileBlock, "", "【用户选择的待对比商品】"}
	for i, item := range items {
		lines = append(lines, fmt.Sprintf(
			"%d. %s（品牌：%s）\n   分类：%s\n   推荐理由：%s",
			i+1, item.Name, item.Brand, item.Category, item.Reason))
	}
	return strings.Join(lines, "\n")
}
