package utils

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	uiFontOnce   sync.Once
	uiFontSource *text.GoTextFaceSource
	uiFontErr    error
)

// NewUIFace 返回指定字号的界面字体（Go Regular）
// 字体源只解析一次，之后按字号创建轻量的 GoTextFace
func NewUIFace(size float64) (*text.GoTextFace, error) {
	uiFontOnce.Do(func() {
		uiFontSource, uiFontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if uiFontErr != nil {
		return nil, fmt.Errorf("failed to load ui font: %w", uiFontErr)
	}
	return &text.GoTextFace{Source: uiFontSource, Size: size}, nil
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体，为 nil 时不换行
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil {
		return []string{textStr}
	}
	return wrapWith(textStr, maxWidth, func(s string) float64 {
		w, _ := text.Measure(s, font, 0)
		return w
	})
}

// wrapWith 按单词换行，单个单词超宽时按字符强制断行
func wrapWith(textStr string, maxWidth float64, measure func(string) float64) []string {
	if textStr == "" || maxWidth <= 0 || measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		// 单词本身超宽：逐字符断开
		for measure(word) > maxWidth {
			cut := 0
			for i := range word {
				_, size := utf8.DecodeRuneInString(word[i:])
				if measure(word[:i+size]) > maxWidth {
					break
				}
				cut = i + size
			}
			if cut == 0 {
				_, cut = utf8.DecodeRuneInString(word)
			}
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
