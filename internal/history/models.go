package history

import "time"

// Terminal conversion outcomes.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Conversion is one finished or failed job.
type Conversion struct {
	ID             int64
	UserID         string
	ToolID         string
	FileName       string
	OutputFileName string
	DownloadURL    string
	FileSize       int64
	Status         Status
	CreatedAt      time.Time
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID           int64
	Email        string
	Source       string
	SubscribedAt time.Time
}

// Message is a contact form submission.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Body      string
	Read      bool
	CreatedAt time.Time
}

// ToolCount pairs a tool with its recorded conversion count.
type ToolCount struct {
	ToolID string
	Count  int64
}

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(value string) time.Time {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
