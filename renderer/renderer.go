package renderer

import (
	"errors"

	"github.com/anglerfp/rfpgen/layout"
)

// ErrUnavailable 表示渲染后端不可用（缺失、不具备排版能力或内置字体
// 资源无法加载）。调用方用 errors.Is 识别并区别于其它渲染失败。
var ErrUnavailable = errors.New("渲染后端不可用")

// Renderer 将布局结果输出为最终文件，例如 PDF。
// Render 返回生成的二进制数据（PDF 字节切片）以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
