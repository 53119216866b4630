package config

// Capabilities describes which optional features are usable in this process.
// It is detected once at startup and threaded through the components instead
// of being re-probed per call.
type Capabilities struct {
	// PDFExtraction reports whether page-level PDF text extraction is wired in.
	PDFExtraction bool
	// Embeddings reports whether embedding-based retrieval is both enabled by
	// configuration and backed by a configured provider.
	Embeddings bool
}

// DetectCapabilities computes the capability descriptor for this process.
// pdfExtraction is supplied by the caller because the loader owns that wiring.
func DetectCapabilities(cfg *Config, pdfExtraction bool) Capabilities {
	caps := Capabilities{PDFExtraction: pdfExtraction}
	if cfg == nil || !cfg.UseEmbeddings {
		return caps
	}
	provider, err := GetConfigValue("LEXCITE_EMBEDDINGS_PROVIDER")
	caps.Embeddings = err == nil && provider != ""
	return caps
}
