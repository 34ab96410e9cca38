package ingest

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_Txt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("Scope\nModule A\n"), 0644))

	text, err := NewExtractor().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Scope\nModule A\n", text)
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	_, err := NewExtractor().ExtractText("doc.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestIsSupportedDocument(t *testing.T) {
	assert.True(t, IsSupportedDocument("report.PDF"))
	assert.True(t, IsSupportedDocument("notes.docx"))
	assert.True(t, IsSupportedDocument("plain.txt"))
	assert.False(t, IsSupportedDocument("data.csv"))
	assert.False(t, IsSupportedDocument("noextension"))
}

func TestExtractText_Docx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Business Requirement</w:t></w:r></w:p>
    <w:p><w:r><w:t>Build a vendor portal </w:t></w:r><w:r><w:t>with login.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := NewExtractor().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Business Requirement\nBuild a vendor portal with login.", text)
}

func TestExtractText_DocxMissingDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = NewExtractor().ExtractText(path)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestTextFromContentStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n(Business Requirement) Tj\n0 -14 Td\n(Build a portal.) Tj\nET\n")
	assert.Equal(t, "Business Requirement\nBuild a portal.", textFromContentStream(stream))
}

func TestTextFromContentStream_TJArray(t *testing.T) {
	stream := []byte("[(Sco) -20 (pe)] TJ\nT*\n(Module A) Tj\n")
	assert.Equal(t, "Scope\nModule A", textFromContentStream(stream))
}

func TestDecodePDFString(t *testing.T) {
	assert.Equal(t, "a(b)c", decodePDFString([]byte(`a\(b\)c`)))
	assert.Equal(t, "line\nnext", decodePDFString([]byte(`line\nnext`)))
	assert.Equal(t, "A", decodePDFString([]byte(`\101`)))
	assert.Equal(t, `back\slash`, decodePDFString([]byte(`back\\slash`)))
}

func TestIsImageFile_ByContent(t *testing.T) {
	// Minimal PNG header is enough for content sniffing.
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, os.WriteFile(path, png, 0644))
	assert.True(t, IsImageFile(path))

	textPath := filepath.Join(t.TempDir(), "fake.png")
	require.NoError(t, os.WriteFile(textPath, []byte("not an image"), 0644))
	assert.False(t, IsImageFile(textPath))
}
