package domain

import "time"

// GalleryImage is a showcase photo of the barbershop's work.
type GalleryImage struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Image     string    `json:"image" bson:"image"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
