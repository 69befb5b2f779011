// Package provider holds the result types returned by external content providers.
package provider

// Citation is a web source an answer was grounded on.
type Citation struct {
	Title string
	URI   string
}

// GeneratedText is a model answer with the sources it cites.
type GeneratedText struct {
	Text      string
	Citations []Citation
}
