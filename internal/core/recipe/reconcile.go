package recipe

import (
	"strings"
)

// reconcileIgnore 永遠不列入缺少清單的萬用調味料
var reconcileIgnore = map[string]struct{}{
	"salt":         {},
	"pepper":       {},
	"black pepper": {},
	"water":        {},
	"oil":          {},
	"olive oil":    {},
}

// ComputeMissing 比對食譜的食材行與庫存快照，回傳缺少的項目
// 比對用 core name 的軟性比對（相等或互為子字串），
// 結果保留首次出現順序、以 core name 去重，回傳清理過的原始片語。
// 純函數：不修改也不保留傳入的庫存。
func ComputeMissing(recipeLines []string, inventory []InventoryItem) []string {
	stocked := make([]string, 0, len(inventory))
	for _, item := range inventory {
		if !item.InStock {
			continue
		}
		if core := Normalize(item.Name); core != "" {
			stocked = append(stocked, core)
		}
	}

	seen := make(map[string]struct{}, len(recipeLines))
	missing := make([]string, 0, len(recipeLines))

	for _, line := range recipeLines {
		core := Normalize(line)
		if core == "" {
			continue
		}
		if _, ignored := reconcileIgnore[core]; ignored {
			continue
		}
		if _, dup := seen[core]; dup {
			continue
		}
		seen[core] = struct{}{}

		if softMatchAny(core, stocked) {
			continue
		}
		missing = append(missing, CleanPhrase(line))
	}

	return missing
}

// softMatchAny 任一庫存 core 與目標相等或互為子字串就算持有
func softMatchAny(core string, stocked []string) bool {
	for _, s := range stocked {
		if strings.Contains(s, core) || strings.Contains(core, s) {
			return true
		}
	}
	return false
}
