// Package upload hands the storefront the public settings it needs to upload
// images straight to the image host. File bytes never pass through the portal.
package upload

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when the provider settings are incomplete.
var ErrNotConfigured = errors.New("upload: provider not configured")

// Target is the public, secret-free description of where to upload.
type Target struct {
	UploadURL    string `json:"uploadUrl"`
	CloudName    string `json:"cloudName"`
	UploadPreset string `json:"uploadPreset"`
	Folder       string `json:"folder"`
}

// Provider describes an unsigned direct-upload endpoint.
type Provider interface {
	Target() (*Target, error)
}

const cloudinaryUploadURL = "https://api.cloudinary.com/v1_1/%s/auto/upload"

type cloudinaryProvider struct {
	cloudName    string
	uploadPreset string
	folder       string
}

// NewCloudinaryProvider returns a provider for a Cloudinary unsigned upload
// preset. Missing settings are reported per call, not here.
func NewCloudinaryProvider(cloudName, uploadPreset, folder string) Provider {
	return &cloudinaryProvider{cloudName: cloudName, uploadPreset: uploadPreset, folder: folder}
}

func (p *cloudinaryProvider) Target() (*Target, error) {
	if p.cloudName == "" || p.uploadPreset == "" {
		return nil, ErrNotConfigured
	}
	return &Target{
		// auto lets the host detect the resource type
		UploadURL:    fmt.Sprintf(cloudinaryUploadURL, p.cloudName),
		CloudName:    p.cloudName,
		UploadPreset: p.uploadPreset,
		Folder:       p.folder,
	}, nil
}
