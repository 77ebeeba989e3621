// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Location
		wantErr bool
	}{
		{"local file", "config.toml", Location{Scheme: SchemeFile, Path: "config.toml"}, false},
		{"absolute path", "/etc/app/config.toml", Location{Scheme: SchemeFile, Path: "/etc/app/config.toml"}, false},
		{"stdin", "-", Location{Scheme: SchemeStdin}, false},
		{"s3", "s3://bucket/path/to/key.toml", Location{Scheme: SchemeS3, Bucket: "bucket", Key: "path/to/key.toml"}, false},
		{"s3 missing key", "s3://bucket", Location{}, true},
		{"s3 missing bucket", "s3:///key", Location{}, true},
		{"empty", "", Location{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLocationString(t *testing.T) {
	for _, raw := range []string{"config.toml", "-", "s3://b/k"} {
		loc, err := Parse(raw)
		require.NoError(t, err)
		require.Equal(t, raw, loc.String())
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o600))

	loc, err := Parse(path)
	require.NoError(t, err)

	data, err := Read(context.Background(), loc, Options{})
	require.NoError(t, err)
	require.Equal(t, "a = 1\n", string(data))
}

func TestReadMissingFile(t *testing.T) {
	loc, err := Parse(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	_, err = Read(context.Background(), loc, Options{})
	require.Error(t, err)
}
