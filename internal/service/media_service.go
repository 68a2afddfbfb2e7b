package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	cfg "github.com/maheshrc27/postplanner/configs"
	"github.com/maheshrc27/postplanner/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ObjectStore is the slice of the S3 API the uploader needs.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewR2Client builds an S3 client pointed at Cloudflare R2.
func NewR2Client(ctx context.Context, r2 cfg.R2) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2.AccessKey, r2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2.AccountID))
	}), nil
}

// Upload is the outcome of one media upload: refs in upload order plus the
// media kind a draft should carry for them.
type Upload struct {
	MediaRefs []string `json:"media_refs"`
	MediaKind string   `json:"media_kind"`
}

type MediaService interface {
	Upload(ctx context.Context, userID int64, files []*multipart.FileHeader) (*Upload, error)
	UploadBytes(ctx context.Context, userID int64, blobs [][]byte) (*Upload, error)
}

type mediaService struct {
	objects   ObjectStore
	bucket    string
	publicURL string
	newKey    func() (string, error)
}

func NewMediaService(objects ObjectStore, r2 cfg.R2) MediaService {
	return &mediaService{
		objects:   objects,
		bucket:    r2.BucketName,
		publicURL: strings.TrimRight(r2.PublicURL, "/"),
		newKey:    func() (string, error) { return gonanoid.New() },
	}
}

var allowedMedia = map[string]struct{}{
	"mp4": {}, "mov": {}, "jpg": {}, "png": {}, "webp": {}, "gif": {},
}

func (s *mediaService) Upload(ctx context.Context, userID int64, files []*multipart.FileHeader) (*Upload, error) {
	blobs := make([][]byte, 0, len(files))
	for _, file := range files {
		data, err := readFile(file)
		if err != nil {
			return nil, err
		}
		blobs = append(blobs, data)
	}
	return s.UploadBytes(ctx, userID, blobs)
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}
	return data, nil
}

// UploadBytes checks every blob before storing any of them.
func (s *mediaService) UploadBytes(ctx context.Context, userID int64, blobs [][]byte) (*Upload, error) {
	if userID == 0 {
		err := errors.New("user is not valid")
		slog.Info(err.Error())
		return nil, err
	}
	if len(blobs) == 0 {
		return nil, invalid("media", "no files provided")
	}

	kinds := make([]types.Type, len(blobs))
	for i, data := range blobs {
		kind, err := filetype.Match(data)
		if err != nil || kind == types.Unknown {
			return nil, invalid("media", "file %d has an unsupported type", i+1)
		}
		if _, ok := allowedMedia[kind.Extension]; !ok {
			return nil, invalid("media", "file type %s is not allowed", kind.Extension)
		}
		kinds[i] = kind
	}

	refs := make([]string, 0, len(blobs))
	for i, data := range blobs {
		key, err := s.newKey()
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		key = fmt.Sprintf("%d/%s.%s", userID, key, kinds[i].Extension)

		_, err = s.objects.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(kinds[i].MIME.Value),
		})
		if err != nil {
			slog.Info(err.Error())
			return nil, fmt.Errorf("error uploading file %d: %w", i+1, err)
		}
		refs = append(refs, s.publicURL+"/"+key)
	}

	return &Upload{MediaRefs: refs, MediaKind: kindOfUpload(kinds)}, nil
}

func kindOfUpload(kinds []types.Type) string {
	if len(kinds) > 1 {
		return models.MediaKindCarousel
	}
	if kinds[0].MIME.Type == "video" {
		return models.MediaKindVideo
	}
	return models.MediaKindImage
}
