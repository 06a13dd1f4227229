// Package documents は引渡書（DOCX）のテンプレート差し込みを行う。
//
// DOCXはzip化されたOOXMLなので、word/document.xml 内の {field} プレース
// ホルダを置換してzipを組み直すだけで足りる。描画やレイアウトには触らない。
package documents

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

const documentPart = "word/document.xml"

var placeholderRe = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// FillTemplate はテンプレートのプレースホルダを fields の値で置換した
// DOCXバイト列を返す。未知のプレースホルダは空文字になる。
func FillTemplate(templatePath string, fields map[string]string) ([]byte, error) {
	src, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return fillZip(src, fields)
}

func fillZip(src []byte, fields map[string]string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return nil, fmt.Errorf("open template archive: %w", err)
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}

		if f.Name == documentPart {
			data = []byte(substitute(string(data), fields))
		}

		// 圧縮方式などのヘッダはテンプレート側のものを引き継ぐ
		hdr := f.FileHeader
		w, err := zw.CreateHeader(&hdr)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return out.Bytes(), nil
}

// substitute は {key} を対応する値（XMLエスケープ済み）に置き換える。
// 値のない {key} は空文字。段落内改行はWordの <w:br/> にする。
func substitute(doc string, fields map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(doc, func(m string) string {
		key := m[1 : len(m)-1]
		v, ok := fields[key]
		if !ok {
			return ""
		}
		return encodeValue(v)
	})
}

func encodeValue(v string) string {
	var b strings.Builder
	lines := strings.Split(strings.ReplaceAll(v, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("<w:br/>")
		}
		xml.EscapeText(&b, []byte(line))
	}
	return b.String()
}
