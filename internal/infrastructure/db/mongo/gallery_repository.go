package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

const collectionGallery = "gallery"

type GalleryRepository struct {
	col *mongo.Collection
}

var _ ports.GalleryRepository = (*GalleryRepository)(nil)

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{col: db.Collection(collectionGallery)}
}

func (r *GalleryRepository) Insert(ctx context.Context, img *domain.GalleryImage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	img.ID = uuid.NewString()
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, img)
	return err
}

func (r *GalleryRepository) Get(ctx context.Context, id string) (*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var img domain.GalleryImage
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&img); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGalleryImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*domain.GalleryImage, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrGalleryImageNotFound
	}
	return nil
}
