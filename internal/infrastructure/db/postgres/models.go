package postgres

import (
	"time"

	"github.com/mmemodas/storefront/internal/core/domain"
)

type appointmentModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null"`
	Phone     string    `gorm:"not null"`
	Service   string    `gorm:"not null"`
	Date      string    `gorm:"size:10;not null;index:idx_appointments_slot"`
	Time      string    `gorm:"size:5;not null;index:idx_appointments_slot"`
	Status    string    `gorm:"size:16;not null;index"`
	CreatedAt time.Time `gorm:"index"`
}

func (appointmentModel) TableName() string { return "appointments" }

func (m appointmentModel) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Service:   m.Service,
		Date:      m.Date,
		Time:      m.Time,
		Status:    domain.AppointmentStatus(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func appointmentFromDomain(a *domain.Appointment) appointmentModel {
	return appointmentModel{
		ID:        a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Service:   a.Service,
		Date:      a.Date,
		Time:      a.Time,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

type productModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	Name      string  `gorm:"not null"`
	Price     float64 `gorm:"not null"`
	Image     string  `gorm:"not null"`
	Category  string  `gorm:"not null;index"`
	Active    bool    `gorm:"not null;index"`
	CreatedAt time.Time
}

func (productModel) TableName() string { return "products" }

func (m productModel) toDomain() *domain.Product {
	return &domain.Product{
		ID:        m.ID,
		Name:      m.Name,
		Price:     m.Price,
		Image:     m.Image,
		Category:  m.Category,
		Active:    m.Active,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func productFromDomain(p *domain.Product) productModel {
	return productModel{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

type galleryImageModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Title     string `gorm:"not null"`
	Image     string `gorm:"not null"`
	CreatedAt time.Time
}

func (galleryImageModel) TableName() string { return "gallery_images" }

func (m galleryImageModel) toDomain() *domain.GalleryImage {
	return &domain.GalleryImage{
		ID:        m.ID,
		Title:     m.Title,
		Image:     m.Image,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

type userModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

func (m userModel) toDomain() *domain.User {
	return &domain.User{ID: m.ID, Username: m.Username, PasswordHash: m.PasswordHash}
}
