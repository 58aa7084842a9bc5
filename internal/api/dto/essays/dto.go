package essays

import "time"

type EssayRequest struct {
	Title   string `json:"title"`
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
	Status  string `json:"status"` // draft | revising | final
}

type EssayResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	WordCount int       `json:"word_count"` // Считается на сервере
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
