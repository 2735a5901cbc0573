package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

// --- appointments ---

type AppointmentRepository struct {
	db *gorm.DB
}

var _ ports.AppointmentRepository = (*AppointmentRepository)(nil)

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Insert(ctx context.Context, a *domain.Appointment) error {
	a.ID = uuid.NewString()
	a.CreatedAt = stamp(a.CreatedAt)
	m := appointmentFromDomain(a)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	var m appointmentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *AppointmentRepository) List(ctx context.Context, f ports.AppointmentFilter) ([]*domain.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&appointmentModel{})
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.ExcludeCancelled {
		q = q.Where("status <> ?", string(domain.StatusCancelled))
	}
	if f.Before != "" {
		q = q.Where("date < ?", f.Before)
	}

	var rows []appointmentModel
	if err := q.Order("created_at DESC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	var out *domain.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m appointmentModel
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAppointmentNotFound
			}
			return err
		}
		if err := tx.Model(&m).Update("status", string(status)).Error; err != nil {
			return err
		}
		m.Status = string(status)
		out = m.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// --- products ---

type ProductRepository struct {
	db *gorm.DB
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) error {
	p.ID = uuid.NewString()
	p.CreatedAt = stamp(p.CreatedAt)
	m := productFromDomain(p)
	// Select("*") so a false Active is written rather than skipped as a zero value.
	return r.db.WithContext(ctx).Select("*").Create(&m).Error
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	var m productModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *ProductRepository) List(ctx context.Context, f ports.ProductFilter) ([]*domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&productModel{})
	if f.ActiveOnly {
		q = q.Where("active = ?", true)
	}

	var rows []productModel
	if err := q.Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Product, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	var out *domain.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m productModel
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProductNotFound
			}
			return err
		}

		p := m.toDomain()
		p.Apply(patch)

		cols := patchColumns(patch)
		if len(cols) > 0 {
			if err := tx.Model(&productModel{}).Where("id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func patchColumns(p domain.ProductPatch) map[string]any {
	cols := make(map[string]any, 4)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Image != nil {
		cols["image"] = *p.Image
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	return cols
}

func (r *ProductRepository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// --- gallery ---

type GalleryRepository struct {
	db *gorm.DB
}

var _ ports.GalleryRepository = (*GalleryRepository)(nil)

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Insert(ctx context.Context, img *domain.GalleryImage) error {
	img.ID = uuid.NewString()
	img.CreatedAt = stamp(img.CreatedAt)
	m := galleryImageModel{ID: img.ID, Title: img.Title, Image: img.Image, CreatedAt: img.CreatedAt}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *GalleryRepository) Get(ctx context.Context, id string) (*domain.GalleryImage, error) {
	var m galleryImageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGalleryImageNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	var rows []galleryImageModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.GalleryImage, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&galleryImageModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrGalleryImageNotFound
	}
	return nil
}

// --- users ---

type UserRepository struct {
	db *gorm.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	if _, err := r.GetByUsername(ctx, u.Username); err == nil {
		return domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	m := userModel{ID: uuid.NewString(), Username: u.Username, PasswordHash: u.PasswordHash}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserExists
		}
		return err
	}
	u.ID = m.ID
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *UserRepository) first(ctx context.Context, cond string, arg any) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}
