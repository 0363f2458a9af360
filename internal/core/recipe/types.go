package recipe

import (
	"recipe-engine/internal/pkg/common"
)

// Recipe 合成輸出
type Recipe = common.Recipe

// InventoryItem 庫存快照項目
type InventoryItem = common.InventoryItem

// CookingCategory 烹調類別
type CookingCategory = common.CookingCategory

// DishKind 料理種類
type DishKind = common.DishKind
