package services

import (
	"strings"

	"github.com/laodict/laodict-admin/internal/models"
)

// MenuItem is one entry of the console navigation.
type MenuItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var allMenuItems = []MenuItem{
	{Key: "dashboard", Label: "Dashboard", Path: "/admin"},
	{Key: "words", Label: "Words", Path: "/admin/words"},
	{Key: "pairs", Label: "Correct & Incorrect", Path: "/admin/incorrect"},
	{Key: "users", Label: "Users", Path: "/admin/users"},
}

// menuKeysByRole is a static allow-list. Unknown roles fall back to the
// viewer set.
var menuKeysByRole = map[string][]string{
	models.RoleSuperAdmin: {"dashboard", "words", "pairs", "users"},
	models.RoleAdmin:      {"dashboard", "words", "pairs", "users"},
	models.RoleEditor:     {"dashboard", "words", "pairs"},
	models.RoleViewer:     {"dashboard", "words"},
}

// MenuForRole returns the navigation entries visible to a role.
func MenuForRole(role string) []MenuItem {
	keys, ok := menuKeysByRole[strings.ToLower(role)]
	if !ok {
		keys = menuKeysByRole[models.RoleViewer]
	}
	items := make([]MenuItem, 0, len(keys))
	for _, key := range keys {
		for _, item := range allMenuItems {
			if item.Key == key {
				items = append(items, item)
			}
		}
	}
	return items
}
