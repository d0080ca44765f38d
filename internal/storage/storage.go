// Package storage persists course document files (generated rules
// sheets, uploaded forms) either on local disk or in an S3-compatible
// bucket (DigitalOcean Spaces), selected by configuration.
package storage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

type Storage interface {
	// SaveFile stores an uploaded file and returns its public path/URL.
	SaveFile(fileHeader *multipart.FileHeader, filename string) (string, error)
	// SaveBytes stores generated content and returns its public path/URL.
	SaveBytes(data []byte, filename, contentType string) (string, error)
}

type LocalStorage struct {
	uploadDir string
}

type SpacesStorage struct {
	client   *s3.S3
	bucket   string
	cdnURL   string
	endpoint string
}

func NewLocalStorage(uploadDir string) *LocalStorage {
	return &LocalStorage{uploadDir: uploadDir}
}

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client:   s3.New(sess),
		bucket:   bucket,
		cdnURL:   cdnURL,
		endpoint: endpoint,
	}, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// normalizeFilename creates a unique, normalized filename without spaces.
func normalizeFilename(filename string) string {
	base := strings.ReplaceAll(filename, " ", "_")
	base = unsafeChars.ReplaceAllString(base, "")
	return fmt.Sprintf("%d_%s", time.Now().UnixNano(), base)
}

func (l *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, filename string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	return l.SaveBytes(data, filename, fileHeader.Header.Get("Content-Type"))
}

func (l *LocalStorage) SaveBytes(data []byte, filename, contentType string) (string, error) {
	if err := os.MkdirAll(l.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := normalizeFilename(filename)
	full := filepath.Join(l.uploadDir, name)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		log.Error().Err(err).Str("file", full).Msg("failed to write local file")
		return "", err
	}
	return "/uploads/" + name, nil
}

func (s *SpacesStorage) SaveFile(fileHeader *multipart.FileHeader, filename string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	return s.SaveBytes(data, filename, fileHeader.Header.Get("Content-Type"))
}

func (s *SpacesStorage) SaveBytes(data []byte, filename, contentType string) (string, error) {
	name := normalizeFilename(filename)

	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Error().Err(err).Str("key", name).Msg("failed to upload to spaces")
		return "", fmt.Errorf("failed to upload %q: %w", name, err)
	}

	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.cdnURL, "/"), name), nil
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, name), nil
}
