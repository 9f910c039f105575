package token

import (
	"strings"

	"golang.org/x/text/width"
)

// cjkPunct maps punctuation that has no narrow variant under width
// folding onto the separators the recognizers expect: CJK list/stop
// marks become periods, en and em dashes become plain dashes.
var cjkPunct = strings.NewReplacer(
	"、", ".",
	"。", ".",
	"–", "-",
	"—", "-",
)

// foldWidth converts full-width digits and punctuation (：－～．； etc.)
// to their half-width ASCII equivalents. This pass runs on every
// string-typed cell before any recognizer sees it.
func foldWidth(s string) string {
	return cjkPunct.Replace(width.Fold.String(s))
}
