package htmlutil

import (
	"bytes"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var cellReplacer = strings.NewReplacer(
	"&nbsp;", "",
	" ", "",
	",", "",
)

// CleanCell normalizes the text of one data-grid cell: the upstream
// renders numeric cells with non-breaking-space padding and
// thousands-separator commas.
func CleanCell(s string) string {
	return strings.TrimSpace(cellReplacer.Replace(s))
}

// LooseInt parses a cleaned cell into an integer, defaulting to zero
// when the cell is empty or non-numeric.
func LooseInt(s string) int {
	n, err := strconv.Atoi(CleanCell(s))
	if err != nil {
		return 0
	}
	return n
}
