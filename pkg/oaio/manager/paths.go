package manager

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/diwise/asset-adapter/pkg/oaio/errors"
)

// FileURLPathConverter converts file URLs, as found in the location
// property of LocatableContent, into POSIX paths
type FileURLPathConverter struct{}

func NewFileURLPathConverter() *FileURLPathConverter {
	return &FileURLPathConverter{}
}

func (c *FileURLPathConverter) PathFromURL(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", errors.NewInvalidLocationError(fmt.Sprintf("%q is not a valid URL: %s", fileURL, err.Error()))
	}

	if u.Scheme != "file" {
		return "", errors.NewInvalidLocationError(fmt.Sprintf("%q is not a file URL", fileURL))
	}

	if u.Host != "" && u.Host != "localhost" {
		return "", errors.NewInvalidLocationError(fmt.Sprintf("unsupported host %q in %q", u.Host, fileURL))
	}

	escaped := strings.ToLower(u.EscapedPath())
	if strings.Contains(escaped, "%2f") || strings.Contains(escaped, "%00") {
		return "", errors.NewInvalidLocationError(fmt.Sprintf("%q contains an encoded separator or null byte", fileURL))
	}

	if u.Path == "" {
		return "", errors.NewInvalidLocationError(fmt.Sprintf("%q has no path", fileURL))
	}

	return u.Path, nil
}

func (c *FileURLPathConverter) URLFromPath(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", errors.NewInvalidLocationError(fmt.Sprintf("%q is not an absolute path", path))
	}

	u := url.URL{Scheme: "file", Path: path}
	return u.String(), nil
}
