// Package vocab 维护分类与难度的规范词表。输入在去空白、小写化并剥离变音符号后
// 与词表精确匹配，不做模糊匹配。
package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	Categories   = []string{"Tecnología", "Historia", "Ciencia", "Geografía", "Literatura", "Deporte"}
	Difficulties = []string{"fácil", "medio", "difícil"}
)

// 归一化形式 -> 规范拼写。init 后只读，可并发访问。
var (
	categoryIndex   map[string]string
	difficultyIndex map[string]string
)

func init() {
	categoryIndex = buildIndex(Categories)
	difficultyIndex = buildIndex(Difficulties)
}

func buildIndex(canonical []string) map[string]string {
	index := make(map[string]string, len(canonical))
	for _, value := range canonical {
		index[Fold(value)] = value
	}
	return index
}

// Fold 去首尾空白、小写化，NFD 分解后移除组合变音符号。
// transform.Chain 的结果有内部状态，逐调用构建。
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// CanonicalCategory 将输入映射到规范分类，未命中返回 ok=false。
func CanonicalCategory(value string) (string, bool) {
	canonical, ok := categoryIndex[Fold(value)]
	return canonical, ok
}

// CanonicalDifficulty 将输入映射到规范难度，未命中返回 ok=false。
func CanonicalDifficulty(value string) (string, bool) {
	canonical, ok := difficultyIndex[Fold(value)]
	return canonical, ok
}
