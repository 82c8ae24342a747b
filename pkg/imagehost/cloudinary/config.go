package cloudinary

import "errors"

// Config represents the configuration for the Cloudinary client
type Config struct {
	// CloudName identifies the Cloudinary account the uploads belong to
	CloudName string

	// UploadPreset is the unsigned upload preset configured for the account
	UploadPreset string

	// BaseURL is the Cloudinary API root, normally https://api.cloudinary.com/v1_1
	BaseURL string
}

// Validate checks that the configuration is complete
func (c Config) Validate() error {
	if c.CloudName == "" {
		return errors.New("cloudinary: cloud name is required")
	}
	if c.UploadPreset == "" {
		return errors.New("cloudinary: upload preset is required")
	}
	if c.BaseURL == "" {
		return errors.New("cloudinary: base URL is required")
	}
	return nil
}
