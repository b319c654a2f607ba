package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// Scene selects which attribute groups a profile block may mention.
type Scene string

const (
	SceneChat     Scene = "chat"
	ScenePurchase Scene = "purchase"
)

// FormatBlock renders an attribute map as a bounded natural-language summary.
// Body metrics are summarized rather than echoed, and spending attributes only
// appear in the purchase scene; negative wording never appears.
func FormatBlock(attrs map[string]string, scene Scene) string {
	if len(attrs) == 0 {
		return "【用户画像】暂无可靠的历史画像数据。"
	}

	lines := []string{"【用户画像（基于历史行为，可能存在偏差）】"}

	if v := attrs["gender"]; v != "" {
		lines = append(lines, "- 性别："+v)
	}
	if v := attrs["age"]; v != "" {
		lines = append(lines, fmt.Sprintf("- 年龄段：%s 岁左右", wholeYears(v)))
	}
	if attrs["height"] != "" {
		lines = append(lines, "- 身体条件：身高体型相对稳定")
	}
	if attrs["bmi"] != "" {
		lines = append(lines, "- 体型特征：偏向健康区间")
	}

	if v := attrs["interested_sports"]; v != "" {
		lines = append(lines, "- 感兴趣运动："+v)
	}
	if v := attrs["sports"]; v != "" {
		lines = append(lines, "- 常参与运动："+v)
	}
	if attrs["all_training_times"] != "" {
		lines = append(lines, "- 有一定运动基础")
	}
	if v := attrs["cycling_level"]; v != "" {
		lines = append(lines, "- 骑行经验："+v)
	}

	if scene == ScenePurchase {
		if attrs["activity_buy_count"] != "" {
			lines = append(lines, "- 有过装备购买经验")
		}
		if attrs["activity_buy_pay"] != "" {
			lines = append(lines, "- 对装备品质有一定要求")
		}
	}

	return strings.Join(lines, "\n")
}

// wholeYears truncates spreadsheet ages like "27.0" to "27".
func wholeYears(v string) string {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	return strconv.Itoa(int(f))
}
