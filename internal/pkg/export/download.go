package export

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/swimboard/swimboard/internal/pkg/api"
)

// Download fetches the artifact and writes it under destDir. The local
// filename comes from the filename argument, the Content-Disposition
// header or the URL, in that order. The file is written only after a
// success status, a failed download leaves no partial file behind.
func (m *Manager) Download(artifactUrl string, destDir string, filename string) (string, error) {
	res, err := m.api.GetFile(artifactUrl)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("download failed: %w", api.ResponseToError(res))
	}

	if filename == "" {
		filename = filenameFromHeader(res.Header().Get("Content-Disposition"))
	}
	if filename == "" {
		filename = filenameFromUrl(artifactUrl)
	}
	if filename == "" {
		return "", fmt.Errorf("cannot derive artifact filename from \"%s\"", artifactUrl)
	}

	if err := m.fs.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create output directory: %w", err)
	}

	path := filepath.Join(destDir, filename)
	if err := afero.WriteFile(m.fs, path, res.Body(), 0o644); err != nil {
		return "", fmt.Errorf("cannot write artifact: %w", err)
	}

	m.logger.Debugf(`Downloaded "%s", %d bytes.`, path, len(res.Body()))
	return path, nil
}

func filenameFromHeader(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

// filenameFromUrl takes the last path segment, percent-decoded, query
// string stripped.
func filenameFromUrl(artifactUrl string) string {
	parsed, err := url.Parse(artifactUrl)
	if err != nil {
		return ""
	}
	segment := parsed.EscapedPath()
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}
