// Package filehost resolves file-record content references against the
// object store that actually holds the bytes. The engine never streams
// content itself; it only hands out URLs.
package filehost

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Resolver signs GET URLs for references of the form "key/in/bucket".
// References that are already absolute URLs pass through untouched, so
// records that point at external hosts keep working.
type Resolver struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLTTL    time.Duration
}

func New(cfg Config) (*Resolver, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	ttl := cfg.URLTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Resolver{client: client, bucket: cfg.Bucket, ttl: ttl}, nil
}

// ResolveURL returns a fetchable URL for a content reference. A nil
// resolver passes every reference through.
func (r *Resolver) ResolveURL(ctx context.Context, ref, fileName string) (string, error) {
	if r == nil || isAbsoluteURL(ref) {
		return ref, nil
	}

	params := url.Values{}
	if fileName != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	}

	signed, err := r.client.PresignedGetObject(ctx, r.bucket, ref, r.ttl, params)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", ref, err)
	}
	return signed.String(), nil
}

func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
