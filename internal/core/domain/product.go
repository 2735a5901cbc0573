package domain

import "time"

// DeletePolicy describes what removing a record does to it.
type DeletePolicy string

const (
	// DeleteLogical keeps the record and flags it inactive.
	DeleteLogical DeletePolicy = "logical"
	// DeletePhysical removes the record from the store.
	DeletePhysical DeletePolicy = "physical"
)

// Products are soft-deleted so past orders can still resolve them by id;
// gallery images are removed outright.
const (
	ProductDeletePolicy DeletePolicy = DeleteLogical
	GalleryDeletePolicy DeletePolicy = DeletePhysical
)

// Product is a storefront item. Inactive products are hidden from listings
// but still addressable by id.
type Product struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Price     float64   `json:"price" bson:"price"`
	Image     string    `json:"image" bson:"image"`
	Category  string    `json:"category" bson:"category"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// ProductPatch lists the fields an update may touch. Nil fields are left
// unchanged; id, active and createdAt are not patchable.
type ProductPatch struct {
	Name     *string
	Price    *float64
	Image    *string
	Category *string
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Image == nil && p.Category == nil
}

// Apply merges the non-nil fields of patch into p.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
}
