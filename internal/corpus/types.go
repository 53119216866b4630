package corpus

// Page is one ingested page of one source document.
type Page struct {
	// File is the basename of the origin PDF.
	File string
	// Number is the 1-based position of the page within its document.
	Number int
	// Text is the extracted plain text. Never empty: blank pages are dropped
	// at load time.
	Text string
}
