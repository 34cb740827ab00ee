package server

import "meshconv/api"

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errInvalidURL        = api.Error{Code: "invalid_url", Error: "glb_url is missing or not a valid URL"}
	errInvalidFormat     = api.Error{Code: "invalid_format", Error: "Invalid output_format. Must be 'stl' or 'obj'"}
	errEmptyScene        = api.Error{Code: "empty_scene", Error: "GLB scene is empty or contains no processable geometry"}
	errEmptyMesh         = api.Error{Code: "empty_mesh", Error: "Processed mesh has no vertices"}
	errEmptyDownload     = api.Error{Code: "empty_download", Error: "Fetched GLB file is empty"}
	errFetchTimeout      = api.Error{Code: "fetch_timeout", Error: "Timeout fetching GLB model from URL"}
	errExport            = api.Error{Code: "export_error", Error: "Model conversion failed to produce data"}
	errStorageUpload     = api.Error{Code: "storage_error", Error: "Failed to store conversion artifacts"}
)
