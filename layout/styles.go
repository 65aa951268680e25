package layout

import "github.com/anglerfp/rfpgen/doc"

// 该文件定义固定样式表与页面规格。样式取值对应常见报告类文档的
// 默认样式集（Title 18pt 加粗居中、Heading2 14pt 加粗、Normal 10pt）。

// Letter 页面尺寸与默认 1 英寸页边距（mm）。
const (
	pageWidthMM  = 215.9
	pageHeightMM = 279.4
	pageMarginMM = 25.4
)

// Style 描述一个文本样式：字体、字号、行高、对齐与段前段后间距。
type Style struct {
	Name        string
	Font        string // FontResource 名称
	FontSize    doc.Length
	LineHeight  doc.LineHeightSpec
	Align       string
	SpaceBefore doc.Length
	SpaceAfter  doc.Length
}

// defaultStyles 返回固定样式表，键为 doc 包中的样式标识。
func defaultStyles() map[string]Style {
	return map[string]Style{
		doc.StyleTitle: {
			Name:       doc.StyleTitle,
			Font:       "Bold",
			FontSize:   doc.PT(18),
			LineHeight: doc.AbsoluteLineHeight(doc.PT(22)),
			Align:      "center",
			SpaceAfter: doc.PT(6),
		},
		doc.StyleHeading: {
			Name:        doc.StyleHeading,
			Font:        "Bold",
			FontSize:    doc.PT(14),
			LineHeight:  doc.AbsoluteLineHeight(doc.PT(18)),
			SpaceBefore: doc.PT(12),
			SpaceAfter:  doc.PT(6),
		},
		doc.StyleNormal: {
			Name:       doc.StyleNormal,
			Font:       "Body",
			FontSize:   doc.PT(10),
			LineHeight: doc.AbsoluteLineHeight(doc.PT(12)),
		},
	}
}

// defaultFonts 返回内置字体资源表。
func defaultFonts() map[string]FontResource {
	return map[string]FontResource{
		"Body": {Name: "Body", Src: "builtin:go-regular"},
		"Bold": {Name: "Bold", Src: "builtin:go-bold", Style: "bold"},
	}
}

func defaultMargin() Margin {
	return Margin{Top: pageMarginMM, Right: pageMarginMM, Bottom: pageMarginMM, Left: pageMarginMM}
}
