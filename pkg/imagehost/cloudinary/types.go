package cloudinary

// UploadResponse is the subset of the Cloudinary upload response the
// application consumes; SecureURL is what gets stored on product images.
type UploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Bytes     int64  `json:"bytes"`
}

// ErrorResponse is the error envelope returned by the Cloudinary API
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
