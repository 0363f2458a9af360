package recipe

import (
	"regexp"
	"strings"
)

// 前置數量 token：小數、分數、帶分數、範圍（1–2、6-8）
var quantityPattern = regexp.MustCompile(`^(?:\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?(?:\s*[-–—~]\s*\d+(?:\.\d+)?)?)\s*`)

// 數量後面可能接的單位字
var unitPattern = regexp.MustCompile(`(?i)^(?:cups?|tablespoons?|tbsp|teaspoons?|tsp|ounces?|oz|pounds?|lbs?|lb|grams?|g|kg|ml|liters?|l|slices?|cloves?|cans?|blocks?|servings?)\b\.?\s*`)

var (
	bulletPattern   = regexp.MustCompile(`^[-•*]\s*`)
	parenPattern    = regexp.MustCompile(`\([^)]*\)`)
	leadingOf       = regexp.MustCompile(`(?i)^of\s+`)
	noisePattern    = regexp.MustCompile(`(?i)\b(?:optional|to taste|as needed)\b.*$`)
	nonNamePattern  = regexp.MustCompile(`[^a-z0-9 -]`)
	edgePunctuation = regexp.MustCompile(`^[,.\-\s]+|[,.\-\s]+$`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// CleanPhrase 整理原始食材字串供顯示使用：去掉項目符號、邊緣標點並壓縮空白
// 不做正規化，保留呼叫端的大小寫與份量
func CleanPhrase(s string) string {
	s = bulletPattern.ReplaceAllString(strings.TrimSpace(s), "")
	s = edgePunctuation.ReplaceAllString(s, "")
	return spacePattern.ReplaceAllString(s, " ")
}

// Normalize 將食材字串轉成可比較的 core name：
// 去括號、去前置份量與單位、在逗號或 optional/to taste 處截斷、
// 小寫後只留 [a-z0-9 空白 連字號]。空輸入回空字串，永不失敗。
// 正規化具冪等性：Normalize(Normalize(x)) == Normalize(x)
func Normalize(phrase string) string {
	s := spacePattern.ReplaceAllString(strings.TrimSpace(phrase), " ")
	if s == "" {
		return ""
	}

	s = bulletPattern.ReplaceAllString(s, "")
	s = parenPattern.ReplaceAllString(s, " ")
	// 括號沒閉合時保留左括號前的部分
	if i := strings.Index(s, "("); i != -1 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)

	// 份量 token 在前才剝單位，"cup of flour" 這種要原樣保留
	if m := quantityPattern.FindString(s); m != "" {
		s = s[len(m):]
		s = unitPattern.ReplaceAllString(s, "")
	}
	s = leadingOf.ReplaceAllString(s, "")

	if i := strings.Index(s, ","); i != -1 {
		s = s[:i]
	}
	s = noisePattern.ReplaceAllString(s, "")

	s = strings.ToLower(s)
	s = nonNamePattern.ReplaceAllString(s, " ")
	s = strings.Trim(spacePattern.ReplaceAllString(s, " "), " -")
	return s
}

// ParseIngredientList 清理原始片語列表：去空白與括號註記、過濾空項、保序去重
func ParseIngredientList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		cleaned := CleanPhrase(parenPattern.ReplaceAllString(item, " "))
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}

// NormalizeAll 批次正規化，丟棄空結果
func NormalizeAll(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if core := Normalize(p); core != "" {
			out = append(out, core)
		}
	}
	return out
}
