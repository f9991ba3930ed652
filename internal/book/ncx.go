package book

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
)

// NCX XML structures for parsing toc.ncx
type ncx struct {
	NavMap navMap `xml:"navMap"`
}

type navMap struct {
	NavPoints []navPoint `xml:"navPoint"`
}

type navPoint struct {
	ID        string     `xml:"id,attr"`
	PlayOrder int        `xml:"playOrder,attr"`
	Label     navLabel   `xml:"navLabel"`
	Content   navContent `xml:"content"`
	Children  []navPoint `xml:"navPoint"`
}

type navLabel struct {
	Text string `xml:"text"`
}

type navContent struct {
	Src string `xml:"src,attr"`
}

// buildTOCHrefMap parses the NCX and returns a map of href to title. A book
// without an NCX yields an empty map.
func buildTOCHrefMap(filename string, rf *epub.Rootfile) map[string]string {
	ncxData, err := findAndReadNCX(filename, rf)
	if err != nil {
		return map[string]string{}
	}
	return parseNCXTitles(ncxData)
}

// parseNCXTitles maps every navPoint target, with and without its fragment
// and directory, to the first label that points at it.
func parseNCXTitles(data []byte) map[string]string {
	result := make(map[string]string)

	var toc ncx
	if err := xml.Unmarshal(data, &toc); err != nil {
		return result
	}

	add := func(href, title string) {
		if _, exists := result[href]; !exists {
			result[href] = title
		}
	}

	var extract func(points []navPoint)
	extract = func(points []navPoint) {
		for _, np := range points {
			href := np.Content.Src
			title := strings.TrimSpace(np.Label.Text)

			add(href, title)
			if idx := strings.Index(href, "#"); idx != -1 {
				add(href[:idx], title)
			}
			baseHref := path.Base(href)
			if idx := strings.Index(baseHref, "#"); idx != -1 {
				baseHref = baseHref[:idx]
			}
			add(baseHref, title)

			extract(np.Children)
		}
	}
	extract(toc.NavMap.NavPoints)

	return result
}

func findAndReadNCX(filename string, rf *epub.Rootfile) ([]byte, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var ncxPath string
	for _, item := range rf.Manifest.Items {
		if item.MediaType == "application/x-dtbncx+xml" {
			ncxPath = item.HREF
			break
		}
	}
	if ncxPath == "" {
		for _, f := range zr.File {
			if strings.HasSuffix(strings.ToLower(f.Name), ".ncx") {
				ncxPath = f.Name
				break
			}
		}
	}

	if ncxPath == "" {
		return nil, fmt.Errorf("no NCX file found in EPUB")
	}

	for _, f := range zr.File {
		if f.Name == ncxPath || strings.HasSuffix(f.Name, "/"+ncxPath) || path.Base(f.Name) == path.Base(ncxPath) {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}

	return nil, fmt.Errorf("NCX file %s not found in archive", ncxPath)
}
