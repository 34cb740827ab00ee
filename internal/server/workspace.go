package server

import (
	"os"
	"path/filepath"

	"meshconv/internal/logging"
)

// workspace is a scratch directory owned by a single conversion request. The
// directory name embeds the request ID, so concurrent requests cannot
// collide.
type workspace struct {
	id  string
	dir string
}

func newWorkspace(requestID string) (*workspace, error) {
	dir := filepath.Join(os.TempDir(), "meshconv-"+requestID)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &workspace{id: requestID, dir: dir}, nil
}

func (w *workspace) writeFile(name string, data []byte) (string, error) {
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// remove deletes the workspace. Failures are logged and otherwise ignored;
// they must never affect the response already being produced.
func (w *workspace) remove(logger *logging.Logger) {
	if err := os.RemoveAll(w.dir); err != nil {
		logger.WithError(err).Warn("Failed to remove scratch workspace", "dir", w.dir)
	}
}
