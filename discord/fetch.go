package discord

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
)

const discordAttachmentPrefix = "https://cdn.discordapp.com/attachments/"

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// isImageAttachment filters by file extension. Discord CDN URLs carry signing
// query parameters, so the extension is taken from the URL path only.
func isImageAttachment(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return imageExtensions[strings.ToLower(path.Ext(parsed.Path))]
}

// downloadImage fetches attachment bytes from the Discord CDN.
func downloadImage(rawURL string) ([]byte, error) {
	decodedURL, err := url.QueryUnescape(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to decode URL: %w", err)
	}

	if !strings.HasPrefix(decodedURL, discordAttachmentPrefix) {
		return nil, fmt.Errorf("not a Discord attachment URL: %s", decodedURL)
	}

	resp, err := http.Get(decodedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download attachment (status code: %d): %s", resp.StatusCode, decodedURL)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("attachment is not an image (Content-Type: %s): %s", contentType, decodedURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment body: %w", err)
	}
	return data, nil
}
