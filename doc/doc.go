// Package doc 定义测试文档的元素模型：一个有序的元素序列即一份文档，
// 序列顺序就是最终 PDF 的阅读顺序。
package doc

// ElementKind 标记元素的变体类型。
type ElementKind int

const (
	KindTitle ElementKind = iota
	KindHeading
	KindParagraph
	KindSpacer
)

// 样式标识，与 layout 样式表中的条目一一对应。
const (
	StyleTitle   = "Title"
	StyleHeading = "Heading2"
	StyleNormal  = "Normal"
)

// Element 是文档序列中的一个元素。文本类元素（Title/Heading/Paragraph）
// 携带显示文本与样式标识；Spacer 只携带纵向间距。
type Element struct {
	Kind  ElementKind
	Text  string
	Style string
	Gap   Length
}

// Title 构造标题元素。
func Title(text string) Element {
	return Element{Kind: KindTitle, Text: text, Style: StyleTitle}
}

// Heading 构造小节标题元素。
func Heading(text string) Element {
	return Element{Kind: KindHeading, Text: text, Style: StyleHeading}
}

// Paragraph 构造正文段落元素。
func Paragraph(text string) Element {
	return Element{Kind: KindParagraph, Text: text, Style: StyleNormal}
}

// Spacer 构造纵向留白元素。
func Spacer(gap Length) Element {
	return Element{Kind: KindSpacer, Gap: gap}
}

// Meta 保存 PDF 元信息。
type Meta struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Keywords []string
}

// Document 是一次性构建、交给渲染器消费一次即弃的元素序列。
type Document struct {
	Elements []Element
	Meta     Meta
}
