package loader

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/travigo/routeprint/pkg/itinerary"
	"golang.org/x/net/html"
)

// narrow returns a new document holding a copy of the element with the given id, so that
// later queries cannot match anything outside of it.
func narrow(root *html.Node, id string) (*html.Node, error) {
	container := goquery.NewDocumentFromNode(root).Find("#" + id).First()

	if container.Length() == 0 {
		return nil, &itinerary.ExtractionError{
			Rule:   "container",
			Index:  -1,
			Reason: fmt.Sprintf("element #%s not found", id),
		}
	}

	document := &html.Node{Type: html.DocumentNode}
	document.AppendChild(container.Clone().Get(0))

	return document, nil
}
