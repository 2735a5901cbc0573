package memory

import (
	"time"

	"github.com/mmemodas/storefront/internal/core/domain"
)

var seedProducts = []domain.Product{
	{ID: "1", Name: "Camisa Social Premium", Price: 189.90, Image: "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=400&h=500&fit=crop", Category: "camisas"},
	{ID: "2", Name: "Jaqueta de Couro", Price: 459.90, Image: "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=500&fit=crop", Category: "jaquetas"},
	{ID: "3", Name: "Calça Slim Fit", Price: 219.90, Image: "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=400&h=500&fit=crop", Category: "calcas"},
	{ID: "4", Name: "Blazer Executivo", Price: 389.90, Image: "https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=400&h=500&fit=crop", Category: "blazers"},
	{ID: "5", Name: "Camiseta Premium", Price: 89.90, Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=500&fit=crop", Category: "camisetas"},
	{ID: "6", Name: "Terno Completo", Price: 899.90, Image: "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=400&h=500&fit=crop", Category: "ternos"},
}

var seedGallery = []domain.GalleryImage{
	{ID: "1", Title: "Corte Moderno", Image: "https://images.unsplash.com/photo-1599351431202-1e0f0137899a?w=600&h=400&fit=crop"},
	{ID: "2", Title: "Barba Estilizada", Image: "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?w=600&h=400&fit=crop"},
	{ID: "3", Title: "Fade Clássico", Image: "https://images.unsplash.com/photo-1621605815971-fbc98d665033?w=600&h=400&fit=crop"},
	{ID: "4", Title: "Corte Executivo", Image: "https://images.unsplash.com/photo-1493256338651-d82f7acb2b38?w=600&h=400&fit=crop"},
	{ID: "5", Title: "Degradê Perfeito", Image: "https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=600&h=400&fit=crop"},
	{ID: "6", Title: "Barba Completa", Image: "https://images.unsplash.com/photo-1622286342621-4bd786c2447c?w=600&h=400&fit=crop"},
}

// Seed loads the sample catalog. Timestamps are staggered around base so the
// seed order survives sorting: products oldest first, gallery newest first.
// Existing records with the same ids are overwritten.
func (s *Store) Seed(base time.Time) {
	n := len(seedProducts)
	for i, p := range seedProducts {
		p.Active = true
		p.CreatedAt = base.Add(time.Duration(i-n) * time.Second)
		s.products.put(p)
	}
	for i, img := range seedGallery {
		img.CreatedAt = base.Add(-time.Duration(i+1) * time.Second)
		s.gallery.put(img)
	}
}
