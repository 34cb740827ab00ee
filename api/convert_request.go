package api

// ConvertRequest asks the service to fetch a GLB model and convert it.
// StoreInFirebase selects persisted delivery; the JSON name is kept for
// compatibility with existing clients even though the backend is any
// S3-compatible store.
type ConvertRequest struct {
	GlbURL          string `json:"glb_url"`
	OutputFormat    string `json:"output_format"`
	OptimizeMesh    bool   `json:"optimize_mesh"`
	StoreInFirebase bool   `json:"store_in_firebase"`
}

// StoredConversionResponse is returned instead of raw bytes when persisted
// delivery was requested. StlDownloadURL always points at the converted
// artifact, whatever its format, and duplicates StlStorageURL.
type StoredConversionResponse struct {
	StlDownloadURL string `json:"stl_download_url"`
	GlbStorageURL  string `json:"glb_storage_url,omitempty"`
	StlStorageURL  string `json:"stl_storage_url,omitempty"`
	Message        string `json:"message"`
}
