package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meshconv/api"
	"meshconv/internal/logging"
	"meshconv/internal/storage"
	"meshconv/pkg/fetch"
	"meshconv/pkg/mesh"
)

const glbContentType = "model/gltf-binary"

// ConvertHandler godoc
//
// @Summary Convert a GLB model to STL or OBJ
// @Description Fetches the GLB model at glb_url, flattens its scene into a single mesh, optionally runs mesh cleanup, and returns the converted file. With store_in_firebase the input and output are persisted to object storage and signed download links are returned instead of raw bytes. All errors are returned as JSON
// @Tags convert
// @Accept json
// @Produce octet-stream,json
// @Param requestBody body api.ConvertRequest true "Source model URL, target format and delivery options"
// @Success 200 {object} api.StoredConversionResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Failure 502 {object} api.Error
// @Failure 504 {object} api.Error
// @Router /convert [post]
func (s *Server) ConvertHandler(ctx *gin.Context) {
	var requestBody api.ConvertRequest

	logger := logging.BuildLoggerFromCtx(ctx)

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	// Validation happens before any network traffic.
	format, err := mesh.ParseFormat(requestBody.OutputFormat)
	if err != nil {
		logger.WithError(err).Error("Invalid output format requested")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidFormat)
		return
	}
	if !validSourceURL(requestBody.GlbURL) {
		logger.Error("Invalid source URL supplied")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidURL)
		return
	}

	requestID := uuid.NewString()
	logger = logger.WithRequestID(requestID)
	logger.With("url", requestBody.GlbURL, "format", string(format)).Info("Processing conversion request")

	ws, err := newWorkspace(requestID)
	if err != nil {
		handleConversionError(ctx, logger, err)
		return
	}
	defer ws.remove(logger)

	glbData, err := s.fetcher.Get(ctx.Request.Context(), requestBody.GlbURL)
	if err != nil {
		handleConversionError(ctx, logger, err)
		return
	}
	if _, err := ws.writeFile("input.glb", glbData); err != nil {
		handleConversionError(ctx, logger, err)
		return
	}

	flatMesh, err := mesh.LoadGLB(glbData)
	if err != nil {
		handleConversionError(ctx, logger, err)
		return
	}
	if requestBody.OptimizeMesh {
		before := len(flatMesh.Vertices)
		flatMesh = mesh.Normalize(flatMesh)
		logger.With("vertices_before", before, "vertices_after", len(flatMesh.Vertices)).Debug("Mesh cleanup complete")
	}

	artifact, err := mesh.Export(flatMesh, format)
	if err != nil {
		handleConversionError(ctx, logger, err)
		return
	}

	filename := fmt.Sprintf("converted_model_%d.%s", time.Now().Unix(), artifact.Extension)
	if _, err := ws.writeFile(filename, artifact.Data); err != nil {
		handleConversionError(ctx, logger, err)
		return
	}

	if requestBody.StoreInFirebase {
		s.deliverStored(ctx, logger, requestID, filename, glbData, artifact)
		return
	}

	logger.With("bytes", len(artifact.Data)).Info("Conversion successful, streaming result")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// deliverStored uploads the original input and the converted output, then
// responds with signed download links. Uploads are sequential; if the output
// upload fails the already-stored input is left in place.
func (s *Server) deliverStored(ctx *gin.Context, logger *logging.Logger, requestID, filename string, glbData []byte, artifact *mesh.Artifact) {
	if s.store == nil {
		logger.Error("Persisted delivery requested but no object store is configured")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStorageUpload)
		return
	}

	reqCtx := ctx.Request.Context()
	glbKey := storage.ObjectKey("glb", requestID, "input.glb")
	outKey := storage.ObjectKey(artifact.Extension, requestID, filename)

	if err := s.store.Upload(reqCtx, glbKey, glbData, glbContentType); err != nil {
		logger.WithError(err).Error("Failed to upload original GLB")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStorageUpload)
		return
	}
	if err := s.store.Upload(reqCtx, outKey, artifact.Data, artifact.ContentType); err != nil {
		logger.WithError(err).Error("Failed to upload converted model")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStorageUpload)
		return
	}

	glbURL, err := s.store.SignedURL(reqCtx, glbKey, storage.SignedURLExpiry)
	if err != nil {
		logger.WithError(err).Error("Failed to sign GLB download URL")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStorageUpload)
		return
	}
	outURL, err := s.store.SignedURL(reqCtx, outKey, storage.SignedURLExpiry)
	if err != nil {
		logger.WithError(err).Error("Failed to sign converted model download URL")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errStorageUpload)
		return
	}

	logger.With("glb_key", glbKey, "output_key", outKey).Info("Conversion successful, artifacts stored")
	ctx.JSON(http.StatusOK, api.StoredConversionResponse{
		StlDownloadURL: outURL,
		GlbStorageURL:  glbURL,
		StlStorageURL:  outURL,
		Message:        fmt.Sprintf("Conversion stored. Download links expire in %s.", storage.SignedURLExpiry),
	})
}

func handleConversionError(ctx *gin.Context, logger *logging.Logger, err error) {
	var statusErr *fetch.StatusError

	switch {
	case errors.Is(err, fetch.ErrTimeout):
		logger.WithError(err).Error("Timeout fetching GLB model")
		ctx.AbortWithStatusJSON(http.StatusGatewayTimeout, errFetchTimeout)
	case errors.As(err, &statusErr), errors.Is(err, fetch.ErrTransport):
		logger.WithError(err).Error("Failed to fetch GLB model")
		ctx.AbortWithStatusJSON(http.StatusBadGateway, api.Error{
			Code:  "fetch_failed",
			Error: fmt.Sprintf("Failed to fetch GLB model: %s", err),
		})
	case errors.Is(err, fetch.ErrEmptyBody):
		logger.WithError(err).Error("Fetched GLB file is empty")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errEmptyDownload)
	case errors.Is(err, mesh.ErrEmptyScene):
		logger.WithError(err).Error("GLB scene has no geometry")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errEmptyScene)
	case errors.Is(err, mesh.ErrEmptyMesh):
		logger.WithError(err).Error("Flattened mesh has no vertices")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errEmptyMesh)
	case errors.Is(err, mesh.ErrEmptyExport):
		logger.WithError(err).Error("Export produced no data")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errExport)
	default:
		logger.WithError(err).Error("Unexpected error during conversion")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, api.Error{
			Error: fmt.Sprintf("Internal server error during conversion: %s", err),
		})
	}
}

func validSourceURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
