// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	awsx "github.com/confdiff/confdiff/internal/aws"
	"github.com/confdiff/confdiff/internal/log"
)

// Scheme identifies where a document lives.
type Scheme int

const (
	SchemeFile Scheme = iota
	SchemeStdin
	SchemeS3
)

// Location is one parsed document address: a local path, "-" for stdin,
// or an s3://bucket/key URI.
type Location struct {
	Scheme Scheme
	Path   string // local path
	Bucket string // s3 only
	Key    string // s3 only
}

// Parse classifies a raw document argument into a Location.
func Parse(raw string) (Location, error) {
	switch {
	case raw == "":
		return Location{}, fmt.Errorf("empty document location")
	case raw == "-":
		return Location{Scheme: SchemeStdin}, nil
	case strings.HasPrefix(raw, "s3://"):
		rest := strings.TrimPrefix(raw, "s3://")
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return Location{}, fmt.Errorf("invalid s3 location %q, want s3://bucket/key", raw)
		}
		return Location{Scheme: SchemeS3, Bucket: bucket, Key: key}, nil
	default:
		return Location{Scheme: SchemeFile, Path: raw}, nil
	}
}

// String renders the location back to its argument form.
func (l Location) String() string {
	switch l.Scheme {
	case SchemeStdin:
		return "-"
	case SchemeS3:
		return "s3://" + l.Bucket + "/" + l.Key
	default:
		return l.Path
	}
}

// Options carries overrides for document acquisition.
type Options struct {
	Profile    string // AWS shared config profile
	Region     string // AWS region
	Passphrase string // for encrypted snapshots; empty means env/prompt
}

// Read fetches the raw bytes of a document. Encrypted snapshot envelopes
// are detected and decrypted transparently.
func Read(ctx context.Context, loc Location, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch loc.Scheme {
	case SchemeStdin:
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	case SchemeS3:
		data, err = readS3(ctx, loc, opts)
		if err != nil {
			return nil, err
		}
	default:
		data, err = os.ReadFile(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", loc.Path, err)
		}
	}

	log.Debugf("read %s: %s", loc, humanize.Bytes(uint64(len(data))))

	return MaybeDecrypt(data, opts.Passphrase)
}

func readS3(ctx context.Context, loc Location, opts Options) ([]byte, error) {
	var awsOpts []awsx.Option
	if opts.Profile != "" {
		awsOpts = append(awsOpts, awsx.WithProfile(opts.Profile))
	}
	if opts.Region != "" {
		awsOpts = append(awsOpts, awsx.WithRegion(opts.Region))
	}

	cfg, err := awsx.LoadConfig(ctx, awsOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := awsx.NewS3(cfg)
	out, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: &loc.Bucket,
		Key:    &loc.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", loc.Bucket, loc.Key, err)
	}
	defer out.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", loc.Bucket, loc.Key, err)
	}
	return data, nil
}
