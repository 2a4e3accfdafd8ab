// Package avatar generates placeholder profile pictures for users that
// haven't uploaded one: a colored square with the upper-cased first letter
// of the username, returned as an inline SVG data URI.
package avatar

import (
	"crypto/md5" //nolint:gosec
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"
)

var palette = []string{
	"#3a3a3a",
	"#4a5568",
	"#553c9a",
	"#2c5282",
	"#285e61",
	"#744210",
	"#822727",
	"#702459",
}

// Placeholder returns a data URI for username's generated avatar. An empty
// username yields the "?" avatar on the default background.
func Placeholder(username string) string {
	initial := "?"
	color := palette[0]
	if username != "" {
		initial = strings.ToUpper(string([]rune(username)[0]))
		sum := md5.Sum([]byte(username)) //nolint:gosec
		color = palette[int(sum[0])%len(palette)]
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="40" height="40">`+
			`<rect width="40" height="40" fill="%s"/>`+
			`<text x="50%%" y="50%%" dy=".35em" text-anchor="middle" `+
			`fill="#ffffff" font-family="sans-serif" font-size="20">%s</text>`+
			`</svg>`,
		color, escape(initial),
	)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// Initial returns the letter a placeholder for username would show.
func Initial(username string) string {
	for _, r := range username {
		return string(unicode.ToUpper(r))
	}
	return "?"
}

func escape(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}
