// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package objectstore archives raw artefacts (uploaded lexicon files, rendered
sermon manuscripts) in an S3-compatible bucket.

Archiving is optional. When no bucket is configured, [New] returns a [Nop]
store and callers keep working against PostgreSQL alone.
*/
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store is the write side of an object archive.
type Store interface {
	// Put uploads body under key. Implementations overwrite existing objects.
	Put(context context.Context, key, contentType string, body []byte) error

	// Enabled reports whether objects are actually persisted.
	Enabled() bool
}

// Options configures the S3 client.
type Options struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// New builds an S3 store, or a [Nop] store when Bucket is empty.
func New(ctx context.Context, options Options, logger *slog.Logger) (Store, error) {
	if options.Bucket == "" {
		logger.Info("objectstore_disabled")
		return Nop{}, nil
	}

	loaders := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(options.Region),
	}
	if options.AccessKeyID != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(options.AccessKeyID, options.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("objectstore: load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info("objectstore_enabled",
		slog.String("bucket", options.Bucket),
		slog.String("endpoint", options.Endpoint),
	)

	return &S3Store{client: client, bucket: options.Bucket}, nil
}

// # S3

// S3Store writes objects with PutObject.
type S3Store struct {
	client *s3.Client
	bucket string
}

// Put implements [Store].
func (store *S3Store) Put(context context.Context, key, contentType string, body []byte) error {
	_, err := store.client.PutObject(context, &s3.PutObjectInput{
		Bucket:        aws.String(store.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
		Body:          bytes.NewReader(body),
	})
	if err != nil {
		return fmt.Errorf("objectstore: put %s: %w", key, err)
	}
	return nil
}

// Enabled implements [Store].
func (store *S3Store) Enabled() bool { return true }

// # Nop

// Nop discards every object.
type Nop struct{}

// Put implements [Store].
func (Nop) Put(context.Context, string, string, []byte) error { return nil }

// Enabled implements [Store].
func (Nop) Enabled() bool { return false }

// # Memory

// Memory keeps objects in a map. Used by tests and local tooling.
type Memory struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{Objects: make(map[string][]byte)}
}

// Put implements [Store].
func (store *Memory) Put(_ context.Context, key, _ string, body []byte) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.Objects[key] = bytes.Clone(body)
	return nil
}

// Get returns a stored object.
func (store *Memory) Get(key string) ([]byte, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	body, ok := store.Objects[key]
	return body, ok
}

// Enabled implements [Store].
func (store *Memory) Enabled() bool { return true }
