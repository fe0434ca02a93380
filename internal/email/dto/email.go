package dto

type SyncEmailsRequest struct {
	MaxResults int64    `json:"max_results"`
	Query      string   `json:"query"`
	LabelIDs   []string `json:"label_ids"`
	PageToken  string   `json:"page_token"`
}

type SyncEmailsResponse struct {
	Count         int    `json:"count"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

type SendEmailRequest struct {
	To      string `json:"to" binding:"required"`
	Cc      string `json:"cc"`
	Bcc     string `json:"bcc"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type AttachApplicationRequest struct {
	ApplicationID string `json:"application_id" binding:"required"`
}
