package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Generated bilty PDFs are archived under a fixed prefix so the bucket can
// also hold other artifacts later.
const r2PDFPrefix = "bilty-pdfs"

var (
	r2Client     *s3.Client
	r2Bucket     string
	r2PublicBase string
	r2InitOnce   sync.Once
	r2InitErr    error
)

func initR2() error {
	r2InitOnce.Do(func() {
		r2Bucket = os.Getenv("R2_BUCKET")
		accountID := os.Getenv("R2_ACCOUNT_ID")
		r2PublicBase = strings.TrimRight(os.Getenv("R2_PUBLIC_URL"), "/")

		if r2Bucket == "" || accountID == "" || r2PublicBase == "" {
			r2InitErr = fmt.Errorf("missing required R2 environment variables")
			return
		}

		endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
		resolver := aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: endpoint, SigningRegion: "auto"}, nil
			})

		cfg, err := config.LoadDefaultConfig(context.Background(),
			config.WithRegion("auto"), // R2 only knows the auto region
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				os.Getenv("R2_ACCESS_KEY_ID"),
				os.Getenv("R2_SECRET_ACCESS_KEY"),
				"",
			)),
			config.WithEndpointResolverWithOptions(resolver),
		)
		if err != nil {
			r2InitErr = fmt.Errorf("failed to load R2 config: %w", err)
			return
		}

		r2Client = s3.NewFromConfig(cfg)
	})
	return r2InitErr
}

// UploadToR2 archives a generated bilty PDF and returns its public URL.
func UploadToR2(pdf []byte, filename string) (string, error) {
	if err := initR2(); err != nil {
		return "", err
	}

	key := r2PDFPrefix + "/" + path.Base(filename)
	_, err := r2Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(r2Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}

	return r2PublicBase + "/" + r2PDFPrefix + "/" + url.PathEscape(path.Base(filename)), nil
}

// DeleteFromR2 removes an archived PDF given its public URL.
func DeleteFromR2(fileURL string) error {
	if err := initR2(); err != nil {
		return err
	}

	u, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("invalid file URL: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")

	_, err = r2Client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(r2Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete R2 object: %w", err)
	}
	return nil
}
