// Package fonts 提供内置字体字节数据，渲染器通过 builtin:<name> 引用。
// 为避免携带体积较大的字体文件，内置字体使用 Go 字体家族的常规与加粗两个字面。
package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Load 返回内置字体的字节数据，name 可写为 "builtin:go-regular" 或直接 "go-regular"。
func Load(name string) ([]byte, error) {
	clean := strings.TrimPrefix(strings.TrimPrefix(name, "built-in:"), "builtin:")
	switch clean {
	case "go-regular":
		return goregular.TTF, nil
	case "go-bold":
		return gobold.TTF, nil
	}
	return nil, fmt.Errorf("找不到内置字体 %s", name)
}
