package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/wetrippo/wishlist/internal/common"
	sc "github.com/wetrippo/wishlist/internal/server/config"
	"github.com/wetrippo/wishlist/internal/server/models"
	"github.com/wetrippo/wishlist/internal/server/repositories/repomanager"
)

var (
	loadDefaultAWSConfig = awscfg.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// ItemService implements owner-scoped wishlist item operations plus
// presigned image uploads to the S3-compatible backend.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *ItemService {
	return &ItemService{db: db, repomanager: m, config: config}
}

// List returns the owner's items ordered by creation. An unknown owner is
// not an error; it simply has an empty wishlist.
func (s *ItemService) List(ctx context.Context, ownerID string) ([]*models.Item, error) {
	repo := s.repomanager.Items(s.db)
	items, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	return items, nil
}

// Create stores a new item. The title is the only required field.
func (s *ItemService) Create(ctx context.Context, ownerID, title, imageURL, productURL string) (*models.Item, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrTitleRequired
	}

	repo := s.repomanager.Items(s.db)
	item, err := repo.Create(ctx, &models.Item{
		OwnerID:    ownerID,
		Title:      title,
		ImageURL:   imageURL,
		ProductURL: productURL,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return item, nil
}

// Update applies the non-nil fields of upd to the owner's item. An empty
// supplied title is rejected; omitting the title keeps the stored one.
func (s *ItemService) Update(ctx context.Context, id int64, ownerID string, upd *models.ItemUpdate) (*models.Item, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, common.ErrTitleRequired
	}

	repo := s.repomanager.Items(s.db)
	item, err := repo.Update(ctx, id, ownerID, upd)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the owner's item. Deleting an absent item returns
// common.ErrNotFound.
func (s *ItemService) Delete(ctx context.Context, id int64, ownerID string) error {
	repo := s.repomanager.Items(s.db)
	return repo.Delete(ctx, id, ownerID)
}

// GetRandomStorageKey produces a date-partitioned object key for an
// uploaded image.
func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("images/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ItemService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awscfg.WithRegion(s.config.S3Region),
		awscfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetPresignedPutUrl returns a storage key and a presigned PUT URL the
// client can use to upload an image directly to object storage.
func (s *ItemService) GetPresignedPutUrl(ctx context.Context) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))

	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}
