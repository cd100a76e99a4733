package epub

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const containerXML = `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const chapterOne = `<html xmlns="http://www.w3.org/1999/xhtml"><body>
<h1>Fruit</h1>
<ul><li>apple</li><li>pear</li></ul>
</body></html>`

const chapterTwo = `<html xmlns="http://www.w3.org/1999/xhtml"><body>
<ol><li>fig</li></ol>
</body></html>`

func writeEpub(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.epub")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func ncxBook(t *testing.T) string {
	return writeEpub(t, map[string]string{
		"META-INF/container.xml": containerXML,
		"OEBPS/content.opf": `<?xml version="1.0"?>
<package version="2.0" xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <metadata><dc:title> Lists </dc:title></metadata>
  <manifest>
    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
    <item id="c1" href="text/one.xhtml" media-type="application/xhtml+xml"/>
    <item id="c2" href="text/two%20b.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine toc="ncx"><itemref idref="c1"/><itemref idref="c2"/></spine>
</package>`,
		"OEBPS/toc.ncx": `<?xml version="1.0"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <navMap>
    <navPoint id="p1" playOrder="1">
      <navLabel><text>Part One</text></navLabel>
      <content src="text/one.xhtml"/>
      <navPoint id="p1-1" playOrder="2">
        <navLabel><text>Fruit</text></navLabel>
        <content src="text/one.xhtml#fruit"/>
      </navPoint>
    </navPoint>
    <navPoint playOrder="3">
      <navLabel><text>Part Two</text></navLabel>
      <content src="text/two%20b.xhtml"/>
    </navPoint>
  </navMap>
</ncx>`,
		"OEBPS/text/one.xhtml":   chapterOne,
		"OEBPS/text/two b.xhtml": chapterTwo,
	})
}

func TestNewEpubWithNCX(t *testing.T) {
	book, err := NewEpub(ncxBook(t))
	if err != nil {
		t.Fatalf("NewEpub failed: %v", err)
	}
	defer book.Close()

	if book.Title != "Lists" || book.Version != "2.0" || book.RootDir != "OEBPS" {
		t.Errorf("unexpected metadata: %q %q %q", book.Title, book.Version, book.RootDir)
	}
	if book.TOCPath != "OEBPS/toc.ncx" {
		t.Errorf("unexpected TOC path %q", book.TOCPath)
	}
	if strings.Join(book.Spine, "|") != "OEBPS/text/one.xhtml|OEBPS/text/two b.xhtml" {
		t.Errorf("unexpected spine %q", book.Spine)
	}

	var entries []TOCEntry
	for entry := range book.TOC.All() {
		entries = append(entries, entry)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 TOC entries, got %d", len(entries))
	}

	expected := []TOCEntry{
		{ID: "p1", Title: "Part One", Path: "OEBPS/text/one.xhtml", IsDir: true},
		{ID: "p1-1", ParentID: "p1", Title: "Fruit", Path: "OEBPS/text/one.xhtml", Fragment: "fruit", Level: 1},
		{ID: "navpoint-3", Title: "Part Two", Path: "OEBPS/text/two b.xhtml"},
	}
	for i, entry := range entries {
		if entry != expected[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, entry, expected[i])
		}
	}

	if got := strings.Join(book.Titles(), "|"); got != "Part One|  Fruit|Part Two" {
		t.Errorf("unexpected titles %q", got)
	}
}

func TestChapterItems(t *testing.T) {
	book, err := NewEpub(ncxBook(t))
	if err != nil {
		t.Fatal(err)
	}
	defer book.Close()

	items, err := book.ChapterItems(0)
	if err != nil || strings.Join(items, " ") != "apple pear" {
		t.Errorf("unexpected chapter items %q, %v", items, err)
	}
	if _, err := book.ChapterItems(2); err == nil {
		t.Error("expected an error for an out of range chapter")
	}

	all, err := book.Items()
	if err != nil || strings.Join(all, " ") != "apple pear fig" {
		t.Errorf("unexpected items %q, %v", all, err)
	}
}

func TestNavDocument(t *testing.T) {
	path := writeEpub(t, map[string]string{
		"META-INF/container.xml": containerXML,
		"OEBPS/content.opf": `<?xml version="1.0"?>
<package version="3.0" xmlns="http://www.idpf.org/2007/opf">
  <manifest>
    <item id="nav" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>
    <item id="c1" href="text/one.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine><itemref idref="c1"/></spine>
</package>`,
		"OEBPS/nav.xhtml": `<html xmlns="http://www.w3.org/1999/xhtml"><body>
<nav><ol>
  <li><a href="text/one.xhtml">Fruit</a></li>
  <li><a href="text/one.xhtml#more">More fruit</a></li>
</ol></nav>
</body></html>`,
		"OEBPS/text/one.xhtml": chapterOne,
	})

	items, err := LoadItems(path)
	if err != nil {
		t.Fatalf("LoadItems failed: %v", err)
	}
	if strings.Join(items, "|") != "Fruit|More fruit" {
		t.Errorf("unexpected items %q", items)
	}
}

func TestLoadItemsWithoutTOC(t *testing.T) {
	path := writeEpub(t, map[string]string{
		"META-INF/container.xml": containerXML,
		"OEBPS/content.opf": `<?xml version="1.0"?>
<package version="2.0" xmlns="http://www.idpf.org/2007/opf">
  <manifest>
    <item id="c1" href="text/one.xhtml" media-type="application/xhtml+xml"/>
    <item id="c2" href="text/two.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine><itemref idref="c2"/><itemref idref="c1"/><itemref idref="missing"/></spine>
</package>`,
		"OEBPS/text/one.xhtml": chapterOne,
		"OEBPS/text/two.xhtml": chapterTwo,
	})

	items, err := LoadItems(path)
	if err != nil {
		t.Fatalf("LoadItems failed: %v", err)
	}
	if strings.Join(items, " ") != "fig apple pear" {
		t.Errorf("unexpected items %q", items)
	}
}

func TestNewEpubErrors(t *testing.T) {
	if _, err := NewEpub(filepath.Join(t.TempDir(), "missing.epub")); err == nil {
		t.Error("expected an error for a missing file")
	}

	noContainer := writeEpub(t, map[string]string{"mimetype": "application/epub+zip"})
	if _, err := NewEpub(noContainer); err == nil {
		t.Error("expected an error without container.xml")
	}

	noRootFile := writeEpub(t, map[string]string{
		"META-INF/container.xml": `<container><rootfiles></rootfiles></container>`,
	})
	if _, err := NewEpub(noRootFile); err == nil {
		t.Error("expected an error without a rootfile")
	}
}

func TestSplitPathAndFragment(t *testing.T) {
	tests := []struct {
		input    string
		path     string
		fragment string
	}{
		{"a.xhtml", "a.xhtml", ""},
		{"a.xhtml#b", "a.xhtml", "b"},
		{"dir/a%20b.xhtml#c#d", "dir/a b.xhtml", "c#d"},
	}

	for _, test := range tests {
		path, fragment := splitPathAndFragment(test.input)
		if path != test.path || fragment != test.fragment {
			t.Errorf("splitPathAndFragment(%q) = %q, %q", test.input, path, fragment)
		}
	}
}
