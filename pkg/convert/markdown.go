package convert

import (
	"io"
	"strings"

	"amath.elv.sh/pkg/mdmath"
)

func (c *converter) convertMarkdown(name, text string) error {
	ext := &mdmath.Extension{
		Config:     c.parseCfg,
		Decoration: &c.decoration,
		Inline:     true,
		OnError: func(code string, err error) {
			// Formulas are located by their first occurrence in the document.
			if offset := strings.Index(text, code); offset >= 0 {
				relocate(err, name, text, offset)
			}
			c.report(err)
		},
	}
	out := c.stdout
	if c.check {
		out = io.Discard
	}
	return ext.Convert([]byte(text), out)
}
