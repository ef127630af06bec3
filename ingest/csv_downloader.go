// ingest/csv_downloader.go
package ingest

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/config"
)

// DownloadFile downloads a file from a URL and saves it to a local path.
// It returns an error if any step fails.
func DownloadFile(url string, localSavePath string) error {
	log.Printf("Ingest: downloading %s to %s\n", url, localSavePath)

	client := http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file from %s: received status code %d", url, resp.StatusCode)
	}

	dir := filepath.Dir(localSavePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	outFile, err := os.Create(localSavePath)
	if err != nil {
		return fmt.Errorf("failed to create local file %s: %w", localSavePath, err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to copy downloaded content to %s: %w", localSavePath, err)
	}

	log.Printf("Ingest: successfully downloaded %s\n", url)
	return nil
}

// FetchSourceIfRemote downloads the source to its configured local path
// when a URL is set. With no URL the local file is used as-is.
func FetchSourceIfRemote(src config.SourceConfig) error {
	if src.URL == "" {
		return nil
	}
	return DownloadFile(src.URL, src.Path)
}
