package layout

import (
	"fmt"
	"math"

	"github.com/anglerfp/rfpgen/doc"
)

// Build 根据元素序列生成页面与文本块的布局结果。
// 元素的先后顺序即最终的阅读顺序，布局只负责纵向排布与分页。
func Build(d *doc.Document, opts BuildOptions) (*Result, error) {
	if d == nil {
		return nil, fmt.Errorf("文档为空")
	}
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("layout: 缺少排版后端 Typesetter")
	}
	if len(d.Elements) == 0 {
		return nil, fmt.Errorf("文档中缺少元素")
	}

	fonts := defaultFonts()
	styles := defaultStyles()
	collector := newPageCollector(pageWidthMM, pageHeightMM, defaultMargin())
	flow := &flowContext{
		baseX:      collector.margin.Left,
		width:      pageWidthMM - collector.margin.Left - collector.margin.Right,
		cursorY:    collector.contentTop(),
		typesetter: opts.Typesetter,
		collector:  collector,
	}

	for i, el := range d.Elements {
		if el.Kind == doc.KindSpacer {
			flow.advance(el.Gap.ToMM())
			continue
		}
		style, ok := styles[el.Style]
		if !ok {
			return nil, fmt.Errorf("第 %d 个元素使用了未定义样式 %q", i, el.Style)
		}
		if err := flow.placeText(el.Text, style, fonts); err != nil {
			return nil, err
		}
	}

	return &Result{
		Pages: collector.pages(),
		Fonts: fonts,
		Meta:  d.Meta,
	}, nil
}

type flowContext struct {
	baseX      float64
	width      float64
	cursorY    float64
	typesetter Typesetter
	collector  *pageCollector
}

// advance 仅向下移动游标；Spacer 本身不触发分页，
// 是否换页由下一个文本元素的高度判断。
func (f *flowContext) advance(gap float64) {
	if gap > 0 {
		f.cursorY += gap
	}
}

// placeText 将一个文本元素排入当前页，必要时先分页。
func (f *flowContext) placeText(content string, style Style, fonts map[string]FontResource) error {
	if before := style.SpaceBefore.ToMM(); before > 0 {
		f.cursorY += before
	}
	tb, height, err := composeTextBox(content, style, f.width, fonts, f.typesetter)
	if err != nil {
		return err
	}
	f.ensureSpace(height)
	tb.X = f.baseX
	tb.Y = f.cursorY
	f.collector.curr().appendText(tb)
	f.cursorY += height + style.SpaceAfter.ToMM()
	return nil
}

func (f *flowContext) ensureSpace(height float64) {
	if f.cursorY+height <= f.collector.contentBottom() {
		return
	}
	f.pageBreak()
}

func (f *flowContext) pageBreak() {
	f.collector.newPage()
	f.cursorY = f.collector.contentTop()
}

// composeTextBox 解析样式并调用排版后端，生成带行信息的文本块。
// 返回的高度满足不变式：Height == Σ(line.GapBefore + line.Height)。
func composeTextBox(content string, style Style, width float64, fonts map[string]FontResource, ts Typesetter) (TextBox, float64, error) {
	fontRes, err := resolveFontResource(style.Font, fonts)
	if err != nil {
		return TextBox{}, 0, err
	}

	fontSize := style.FontSize.ToMM()
	if fontSize <= 0 {
		fontSize = 12 * doc.PtToMm
	}
	lineHeight := style.LineHeight.Resolve(style.FontSize, doc.UnitMM)
	if lineHeight <= 0 {
		lineHeight = fontSize * 1.4
	}

	lines, err := layoutLines(content, width, fontRes, fontSize, lineHeight, ts)
	if err != nil {
		return TextBox{}, 0, err
	}

	totalHeight := 0.0
	defaultLeading := math.Max(lineHeight-fontSize, 0)
	for i := range lines {
		if lines[i].Height <= 0 {
			lines[i].Height = fontSize
		}
		if i == 0 {
			lines[i].GapBefore = 0
		} else if lines[i].GapBefore <= 0 {
			lines[i].GapBefore = defaultLeading
		}
		totalHeight += lines[i].GapBefore + lines[i].Height
	}

	tb := TextBox{
		Content:    content,
		Width:      width,
		LineHeight: lineHeight,
		Font:       style.Font,
		FontSize:   fontSize,
		Align:      style.Align,
		Lines:      lines,
		Height:     totalHeight,
	}
	return tb, totalHeight, nil
}

func resolveFontResource(name string, fonts map[string]FontResource) (FontResource, error) {
	if font, ok := fonts[name]; ok {
		return font, nil
	}
	if font, ok := fonts["Body"]; ok {
		return font, nil
	}
	return FontResource{}, fmt.Errorf("字体 %s 未定义，且没有可用的默认字体", name)
}

func layoutLines(content string, width float64, font FontResource, fontSize, lineHeight float64, ts Typesetter) ([]TextLine, error) {
	lines, err := ts.LayoutLines(content, width, font, fontSize, lineHeight)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		height := fontSize
		if height <= 0 {
			height = lineHeight
		}
		lines = []TextLine{{Content: "", Width: width, Height: height}}
	}
	lines[0].GapBefore = 0
	return lines, nil
}

type pageAccumulator struct {
	texts []TextBox
}

func (p *pageAccumulator) appendText(tb TextBox) {
	p.texts = append(p.texts, tb)
}

type pageCollector struct {
	width   float64
	height  float64
	margin  Margin
	accs    []*pageAccumulator
	current int
}

func newPageCollector(width, height float64, margin Margin) *pageCollector {
	pc := &pageCollector{
		width:  width,
		height: height,
		margin: margin,
	}
	pc.newPage()
	return pc
}

func (pc *pageCollector) newPage() *pageAccumulator {
	acc := &pageAccumulator{}
	pc.accs = append(pc.accs, acc)
	pc.current = len(pc.accs) - 1
	return acc
}

func (pc *pageCollector) curr() *pageAccumulator {
	if len(pc.accs) == 0 {
		return pc.newPage()
	}
	return pc.accs[pc.current]
}

func (pc *pageCollector) contentTop() float64 {
	return pc.margin.Top
}

func (pc *pageCollector) contentBottom() float64 {
	return pc.height - pc.margin.Bottom
}

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Width:  pc.width,
			Height: pc.height,
			Margin: pc.margin,
			Texts:  acc.texts,
		}
	}
	return out
}
