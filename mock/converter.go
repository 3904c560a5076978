package mock

import "github.com/mr-devs/querymode"

var _ querymode.Converter = (*Converter)(nil)

// Converter is a mock implementation of querymode.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
