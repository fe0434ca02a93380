package dto

// CreateDocumentRequest registers a file's metadata against an application.
type CreateDocumentRequest struct {
	ApplicationID string `json:"application_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type"`
	FileURL       string `json:"file_url" binding:"required"`
}
