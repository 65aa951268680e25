package layout

import "github.com/anglerfp/rfpgen/doc"

// 该文件定义布局结果，供布局计算与渲染共用。所有坐标与尺寸单位均为毫米（mm）。

// Result 保存布局后的页面、字体资源与文档元信息。
type Result struct {
	Pages []Page
	Fonts map[string]FontResource
	Meta  doc.Meta
}

// FontResource 描述字体资源，Src 使用 builtin:<name> 形式指向内置字体。
type FontResource struct {
	Name  string
	Src   string
	Style string
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int
	G int
	B int
}

// Page 记录页面尺寸、边距与最终可以直接渲染的文本块。
type Page struct {
	Width  float64
	Height float64
	Margin Margin
	Texts  []TextBox
}

// Margin 以毫米为单位。
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// TextBox 表示一个已经排好坐标的文本块。Texts 切片中的先后顺序
// 即元素序列的阅读顺序，渲染器按此顺序输出。
type TextBox struct {
	Content    string
	X          float64
	Y          float64
	Width      float64
	LineHeight float64
	Font       string
	FontSize   float64
	Color      Color
	Align      string // left（默认）/center
	Lines      []TextLine
	Height     float64
}

// TextLine 表示排版后的一行文本内容及其宽高。
type TextLine struct {
	Content   string
	Width     float64
	Height    float64
	GapBefore float64
}
