package documents

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTemplate(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"[Content_Types].xml": `<Types/>`,
		documentPart:          documentXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func readPart(t *testing.T, archive []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestFillZip_ReplacesPlaceholders(t *testing.T) {
	tpl := buildTemplate(t, `<w:t>Issued to {employee_name} ({employee_code})</w:t>`)

	out, err := fillZip(tpl, map[string]string{
		"employee_name": "Asha",
		"employee_code": "E100",
	})
	require.NoError(t, err)

	doc := readPart(t, out, documentPart)
	assert.Equal(t, `<w:t>Issued to Asha (E100)</w:t>`, doc)
}

func TestFillZip_UnknownPlaceholderBecomesEmpty(t *testing.T) {
	tpl := buildTemplate(t, `<w:t>HOD: {hod_name}</w:t>`)

	out, err := fillZip(tpl, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, `<w:t>HOD: </w:t>`, readPart(t, out, documentPart))
}

func TestFillZip_EscapesXML(t *testing.T) {
	tpl := buildTemplate(t, `<w:t>{vendor}</w:t>`)

	out, err := fillZip(tpl, map[string]string{"vendor": "Tools <&> Co"})
	require.NoError(t, err)

	assert.Equal(t, `<w:t>Tools &lt;&amp;&gt; Co</w:t>`, readPart(t, out, documentPart))
}

func TestFillZip_LineBreaks(t *testing.T) {
	tpl := buildTemplate(t, `<w:t>{address}</w:t>`)

	out, err := fillZip(tpl, map[string]string{"address": "Plot 12\nSector 18"})
	require.NoError(t, err)

	assert.Equal(t, `<w:t>Plot 12<w:br/>Sector 18</w:t>`, readPart(t, out, documentPart))
}

func TestFillZip_OtherPartsUntouched(t *testing.T) {
	tpl := buildTemplate(t, `<w:t>{x}</w:t>`)

	out, err := fillZip(tpl, map[string]string{"x": "y"})
	require.NoError(t, err)

	assert.Equal(t, `<Types/>`, readPart(t, out, "[Content_Types].xml"))
}
