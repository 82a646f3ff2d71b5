package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// ToolView describes a tool in a transport-friendly format.
type ToolView struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	Endpoint      string            `json:"endpoint"`
	AcceptedTypes string            `json:"acceptedTypes"`
	Multiple      bool              `json:"multiple"`
	Interactive   bool              `json:"interactive"`
	ComingSoon    bool              `json:"comingSoon"`
	PresetOptions map[string]string `json:"presetOptions,omitempty"`
}

// ToolListResponse wraps a collection of tools.
type ToolListResponse struct {
	Tools []ToolView `json:"tools"`
}

// ToolResponse wraps a single tool.
type ToolResponse struct {
	Tool ToolView `json:"tool"`
}

// JobSubmission is the daemon's job request payload. Files are paths local
// to the daemon host.
type JobSubmission struct {
	ToolID  string   `json:"toolId"`
	Files   []string `json:"files"`
	Format  string   `json:"format,omitempty"`
	Angle   int      `json:"angle,omitempty"`
	Quality int      `json:"quality,omitempty"`
	DPI     int      `json:"dpi,omitempty"`
	Level   string   `json:"level,omitempty"`
	Manual  bool     `json:"manual,omitempty"`
	Email   string   `json:"email,omitempty"`
}

// JobResponse reports a finished job.
type JobResponse struct {
	RequestID        string  `json:"requestId"`
	ToolID           string  `json:"toolId"`
	DownloadURL      string  `json:"downloadUrl"`
	Filename         string  `json:"filename"`
	OriginalSize     int64   `json:"originalSize,omitempty"`
	CompressedSize   int64   `json:"compressedSize,omitempty"`
	ReductionPercent float64 `json:"reductionPercent,omitempty"`
}

// AgentRequest is a free-form command for the tool resolver.
type AgentRequest struct {
	Text  string          `json:"text"`
	Files []AgentFileHint `json:"files,omitempty"`
}

// AgentFileHint describes an attached file by name and MIME type.
type AgentFileHint struct {
	Name string `json:"name"`
	MIME string `json:"mime"`
}

// AgentResponse is the resolved tool plus extracted parameters.
type AgentResponse struct {
	Tool    ToolView `json:"tool"`
	Format  string   `json:"format,omitempty"`
	Angle   int      `json:"angle,omitempty"`
	Quality int      `json:"quality,omitempty"`
	Score   int      `json:"score,omitempty"`
}

// ConversionView describes a history record.
type ConversionView struct {
	ID             int64  `json:"id"`
	UserID         string `json:"userId,omitempty"`
	ToolID         string `json:"toolId"`
	FileName       string `json:"fileName"`
	OutputFileName string `json:"outputFileName,omitempty"`
	DownloadURL    string `json:"downloadUrl,omitempty"`
	FileSize       int64  `json:"fileSize,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// HistoryResponse wraps recent conversions.
type HistoryResponse struct {
	Conversions []ConversionView `json:"conversions"`
}

// SubscribeRequest is a newsletter signup payload.
type SubscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source,omitempty"`
}

// SubscriberView describes a stored signup.
type SubscriberView struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Source       string `json:"source,omitempty"`
	SubscribedAt string `json:"subscribedAt,omitempty"`
}

// ContactRequest is a contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// MessageView describes a stored contact message.
type MessageView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// MessageListResponse wraps contact messages.
type MessageListResponse struct {
	Messages []MessageView `json:"messages"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running      bool   `json:"running"`
	PID          int    `json:"pid"`
	Origin       string `json:"origin"`
	DBPath       string `json:"dbPath"`
	LockFilePath string `json:"lockFilePath"`
	ToolCount    int    `json:"toolCount"`
}
