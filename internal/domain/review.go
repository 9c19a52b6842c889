package domain

import "time"

type Review struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customerName"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment"`
	Project      string     `json:"project,omitempty"`
	ReviewDate   *time.Time `json:"reviewDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
