package api

import "github.com/dailyjournal/journal/journal/domain"

// PostRequest is the client-writable payload for create and update.
type PostRequest struct {
	Headline string `json:"headline"`
	Deck     string `json:"deck"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Body     string `json:"body"`
}

// Fields converts the request payload into domain fields.
func (r PostRequest) Fields() domain.PostFields {
	return domain.PostFields{
		Headline: r.Headline,
		Deck:     r.Deck,
		Author:   r.Author,
		Category: r.Category,
		Body:     r.Body,
	}
}

// Every response carries a boolean ok discriminator.

type PostResponse struct {
	Ok   bool        `json:"ok"`
	Post domain.Post `json:"post"`
}

type PostsResponse struct {
	Ok    bool          `json:"ok"`
	Posts []domain.Post `json:"posts"`
}

type DeleteResponse struct {
	Ok bool `json:"ok"`
}

type StatsResponse struct {
	Ok         bool                   `json:"ok"`
	Total      int                    `json:"total"`
	ByCategory []domain.CategoryCount `json:"byCategory"`
	LatestDate string                 `json:"latestDate,omitempty"`
}

type ErrorResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}
