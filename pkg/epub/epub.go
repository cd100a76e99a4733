package epub

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/ray-d-song/golist/pkg/list"
	"github.com/ray-d-song/golist/pkg/parser"
	"github.com/ray-d-song/golist/pkg/utils"
)

// TOCEntry is one entry of the table of contents
type TOCEntry struct {
	ID       string
	ParentID string
	Title    string
	Path     string // Archive path of the document the entry points to
	Fragment string
	Level    int
	IsDir    bool
}

// Epub represents an EPUB book
type Epub struct {
	Path     string
	TOCPath  string
	File     *zip.ReadCloser
	RootFile string
	RootDir  string
	Version  string
	Title    string
	Spine    []string // Archive paths of the documents in reading order
	TOC      *list.List[TOCEntry]
}

// Container represents the container.xml file
type Container struct {
	XMLName   xml.Name   `xml:"container"`
	RootFiles []RootFile `xml:"rootfiles>rootfile"`
}

// RootFile represents a rootfile in container.xml
type RootFile struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// Package represents the package element in the OPF file
type Package struct {
	XMLName  xml.Name       `xml:"package"`
	Version  string         `xml:"version,attr"`
	Metadata Metadata       `xml:"metadata"`
	Manifest []ManifestItem `xml:"manifest>item"`
	Spine    []SpineItem    `xml:"spine>itemref"`
}

// Metadata holds the dc:* and meta elements of the OPF file
type Metadata struct {
	Items []MetadataItem `xml:",any"`
}

// MetadataItem represents a metadata item in the OPF file
type MetadataItem struct {
	XMLName xml.Name
	Content string `xml:",chardata"`
}

// ManifestItem represents an item in the manifest
type ManifestItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr"`
}

// SpineItem represents an itemref in the spine
type SpineItem struct {
	IDRef string `xml:"idref,attr"`
}

// NCX represents the NCX file for EPUB 2.0
type NCX struct {
	XMLName   xml.Name   `xml:"ncx"`
	NavPoints []NavPoint `xml:"navMap>navPoint"`
}

// NavPoint represents a navigation point in the NCX
type NavPoint struct {
	XMLName   xml.Name   `xml:"navPoint"`
	ID        string     `xml:"id,attr"`
	PlayOrder string     `xml:"playOrder,attr"`
	NavLabel  NavLabel   `xml:"navLabel"`
	Content   Content    `xml:"content"`
	NavPoints []NavPoint `xml:"navPoint"`
}

// NavLabel represents a navigation label
type NavLabel struct {
	Text string `xml:"text"`
}

// Content represents content in a navigation point
type Content struct {
	Src string `xml:"src,attr"`
}

// Nav represents the navigation document for EPUB 3.0
type Nav struct {
	XMLName  xml.Name  `xml:"html"`
	NavLinks []NavLink `xml:"body>nav>ol>li>a"`
}

// NavLink represents a navigation link
type NavLink struct {
	XMLName xml.Name `xml:"a"`
	Href    string   `xml:"href,attr"`
	Text    string   `xml:",chardata"`
}

// NewEpub opens an EPUB file and reads its spine and table of contents
func NewEpub(filePath string) (*Epub, error) {
	zipReader, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, err
	}

	epub := &Epub{
		Path: filePath,
		File: zipReader,
		TOC:  list.New[TOCEntry](),
	}

	// Parse container.xml to find the rootfile
	if err := epub.parseContainer(); err != nil {
		zipReader.Close()
		return nil, err
	}

	// Parse the rootfile to get the TOC and spine
	if err := epub.parseRootFile(); err != nil {
		zipReader.Close()
		return nil, err
	}

	if epub.TOCPath != "" {
		if err := epub.generateTOC(); err != nil {
			zipReader.Close()
			return nil, err
		}
	}

	return epub, nil
}

// parseContainer parses the container.xml file to find the rootfile
func (e *Epub) parseContainer() error {
	var container Container

	containerFile, err := e.File.Open("META-INF/container.xml")
	if err != nil {
		return err
	}
	defer containerFile.Close()

	decoder := xml.NewDecoder(containerFile)
	err = decoder.Decode(&container)
	if err != nil {
		return err
	}

	if len(container.RootFiles) == 0 {
		return fmt.Errorf("no rootfile found in container.xml")
	}

	e.RootFile = container.RootFiles[0].FullPath
	e.RootDir = path.Dir(e.RootFile)

	return nil
}

// parseRootFile parses the rootfile to get the title, spine and TOC location
func (e *Epub) parseRootFile() error {
	var pkg Package

	rootFile, err := e.File.Open(e.RootFile)
	if err != nil {
		return err
	}
	defer rootFile.Close()

	decoder := xml.NewDecoder(rootFile)
	err = decoder.Decode(&pkg)
	if err != nil {
		return err
	}

	e.Version = pkg.Version
	for _, item := range pkg.Metadata.Items {
		if item.XMLName.Local == "title" && e.Title == "" {
			e.Title = strings.TrimSpace(item.Content)
		}
	}

	manifestItems := make(map[string]ManifestItem)
	for _, item := range pkg.Manifest {
		manifestItems[item.ID] = item

		// The NCX file works for EPUB 2.0 and most EPUB 3.0 books
		if item.MediaType == "application/x-dtbncx+xml" {
			e.TOCPath = e.resolve(item.Href)
		}
	}

	// EPUB 3.0 books without an NCX file use the navigation document
	if e.TOCPath == "" {
		for _, item := range pkg.Manifest {
			if item.Properties == "nav" {
				e.TOCPath = e.resolve(item.Href)
				break
			}
		}
	}

	for _, ref := range pkg.Spine {
		item, ok := manifestItems[ref.IDRef]
		if !ok {
			utils.DebugLog("[ERROR:parseRootFile] Spine item %s is not in the manifest", ref.IDRef)
			continue
		}
		e.Spine = append(e.Spine, e.resolve(item.Href))
	}

	return nil
}

// resolve returns the archive path of an href found in the rootfile
func (e *Epub) resolve(href string) string {
	if decoded, err := url.PathUnescape(href); err == nil {
		href = decoded
	}
	return path.Join(e.RootDir, href)
}

// generateTOC reads the table of contents into e.TOC in reading order
func (e *Epub) generateTOC() error {
	utils.DebugLog("[INFO:generateTOC] Trying to get contents from TOC file: %s", e.TOCPath)

	tocFile, err := e.File.Open(e.TOCPath)
	if err != nil {
		utils.DebugLog("[ERROR:generateTOC] Error opening TOC file: %v", err)
		return err
	}
	defer tocFile.Close()

	// hrefs inside the TOC are relative to the TOC file itself
	tocDir := path.Dir(e.TOCPath)

	if strings.HasSuffix(strings.ToLower(e.TOCPath), ".ncx") {
		// Parse as NCX file (EPUB 2.0 style)
		var ncx NCX
		decoder := xml.NewDecoder(tocFile)
		if err := decoder.Decode(&ncx); err != nil {
			utils.DebugLog("[ERROR:generateTOC] Error decoding NCX: %v", err)
			return err
		}
		for i := range ncx.NavPoints {
			processNestedNavPoints(ncx.NavPoints[i], e.TOC, tocDir, 0, "")
		}
	} else {
		// Parse as navigation document (EPUB 3.0 style)
		var nav Nav
		decoder := xml.NewDecoder(tocFile)
		if err := decoder.Decode(&nav); err != nil {
			utils.DebugLog("[ERROR:generateTOC] Error decoding Nav: %v", err)
			return err
		}

		// Nested nav lists are not followed
		for i, link := range nav.NavLinks {
			href, fragment := splitPathAndFragment(link.Href)
			e.TOC.PushBack(TOCEntry{
				ID:       fmt.Sprintf("nav-%d", i+1),
				Title:    strings.TrimSpace(link.Text),
				Path:     path.Join(tocDir, href),
				Fragment: fragment,
			})
		}
	}

	utils.DebugLog("[INFO:generateTOC] Read %d TOC entries", e.TOC.Len())
	return nil
}

// processNestedNavPoints appends navPoint and its children depth first
func processNestedNavPoints(navPoint NavPoint, toc *list.List[TOCEntry], tocDir string, level int, parentID string) {
	href, fragment := splitPathAndFragment(navPoint.Content.Src)
	id := navPoint.ID
	if id == "" {
		id = fmt.Sprintf("navpoint-%d", toc.Len()+1)
	}

	toc.PushBack(TOCEntry{
		ID:       id,
		ParentID: parentID,
		Title:    strings.TrimSpace(navPoint.NavLabel.Text),
		Path:     path.Join(tocDir, href),
		Fragment: fragment,
		Level:    level,
		IsDir:    len(navPoint.NavPoints) > 0,
	})

	for i := range navPoint.NavPoints {
		processNestedNavPoints(navPoint.NavPoints[i], toc, tocDir, level+1, id)
	}
}

// splitPathAndFragment splits a path into the file path and fragment
func splitPathAndFragment(path string) (string, string) {
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	parts := strings.SplitN(path, "#", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// Titles returns the titles of the TOC entries, indented by level
func (e *Epub) Titles() []string {
	titles := make([]string, 0, e.TOC.Len())
	for entry := range e.TOC.All() {
		titles = append(titles, strings.Repeat("  ", entry.Level)+entry.Title)
	}
	return titles
}

// ChapterItems returns the list items of the document at position index of
// the spine
func (e *Epub) ChapterItems(index int) ([]string, error) {
	if index < 0 || index >= len(e.Spine) {
		return nil, fmt.Errorf("chapter index out of range")
	}

	chapterFile, err := e.File.Open(e.Spine[index])
	if err != nil {
		return nil, err
	}
	defer chapterFile.Close()

	content, err := io.ReadAll(chapterFile)
	if err != nil {
		return nil, err
	}

	return parser.ExtractItems(string(content))
}

// Items returns the list items of every document in reading order
func (e *Epub) Items() ([]string, error) {
	var items []string
	for i := range e.Spine {
		chapter, err := e.ChapterItems(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Spine[i], err)
		}
		items = append(items, chapter...)
	}
	return items, nil
}

// Close closes the EPUB file
func (e *Epub) Close() error {
	return e.File.Close()
}

// LoadItems opens an EPUB file and returns its table of contents, or the
// list items of its documents when it has none
func LoadItems(filePath string) ([]string, error) {
	book, err := NewEpub(filePath)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	utils.DebugLog("[INFO:LoadItems] Opened %q (EPUB %s)", book.Title, book.Version)
	if !book.TOC.Empty() {
		return book.Titles(), nil
	}
	return book.Items()
}
