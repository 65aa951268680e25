package fixture

import (
	"fmt"

	"github.com/anglerfp/rfpgen/doc"
)

// 固定的样例 RFP 内容。这些字面值是下游 RFP 解析器测试所依赖的契约，
// 修改任何一条都可能破坏解析器侧的断言。

const titleText = "REQUEST FOR PROPOSAL - TEST DOCUMENT"

const projectDescription = "We are seeking proposals for a complete website redesign including " +
	"modern UI/UX design, responsive layout, and content management system integration."

var clientLines = []string{
	"Client: Test Corporation Inc.",
	"Project: Website Redesign Project",
}

var scopeItems = []string{
	"Brand strategy and positioning",
	"UI/UX design for 10 pages",
	"Responsive web development",
	"CMS integration (WordPress)",
	"SEO optimization",
	"Content migration from old site",
	"Training for content editors",
}

var evaluationCriteria = []string{
	"Technical approach and methodology (40%)",
	"Team experience and qualifications (30%)",
	"Cost and value proposition (20%)",
	"Proposed timeline and milestones (10%)",
}

var importantDates = []string{
	"Submission Deadline: March 15, 2026",
	"Project Start Date: April 1, 2026",
	"Expected Completion: July 31, 2026",
}

// Content 构建样例 RFP 的元素序列。序列顺序即 PDF 的阅读顺序。
func Content() *doc.Document {
	elements := []doc.Element{
		doc.Title(titleText),
		doc.Spacer(doc.IN(0.3)),

		doc.Heading("CLIENT INFORMATION"),
	}
	for _, line := range clientLines {
		elements = append(elements, doc.Paragraph(line))
	}
	elements = append(elements,
		doc.Spacer(doc.IN(0.2)),

		doc.Heading("PROJECT DESCRIPTION"),
		doc.Paragraph(projectDescription),
		doc.Spacer(doc.IN(0.2)),

		doc.Heading("SCOPE OF WORK"),
	)
	for _, item := range scopeItems {
		elements = append(elements, doc.Paragraph("• "+item))
	}
	elements = append(elements,
		doc.Spacer(doc.IN(0.2)),

		doc.Heading("EVALUATION CRITERIA"),
		doc.Paragraph("Proposals will be evaluated based on:"),
	)
	for i, criterion := range evaluationCriteria {
		elements = append(elements, doc.Paragraph(fmt.Sprintf("%d. %s", i+1, criterion)))
	}
	elements = append(elements,
		doc.Spacer(doc.IN(0.2)),

		doc.Heading("IMPORTANT DATES"),
	)
	for _, line := range importantDates {
		elements = append(elements, doc.Paragraph(line))
	}

	return &doc.Document{
		Elements: elements,
		Meta: doc.Meta{
			Title:    titleText,
			Subject:  "RFP parser test fixture",
			Creator:  "rfpgen",
			Keywords: []string{"rfp", "fixture", "test"},
		},
	}
}
