// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecodeTOML(t *testing.T) {
	doc := []byte(`
title = "example"
count = 42
ratio = 0.5
active = true
updated = 1979-05-27T07:32:00Z
ports = [80, 443]

[owner]
name = "tom"

[owner.address]
city = "springfield"
`)

	v, err := DecodeTOML(doc)
	require.NoError(t, err)
	require.Equal(t, Table, v.Kind())

	require.Equal(t, "example", v.Entry("title").Str())
	require.Equal(t, int64(42), v.Entry("count").Int())
	require.Equal(t, 0.5, v.Entry("ratio").Flt())
	require.True(t, v.Entry("active").Boolean())
	require.Equal(t, Datetime, v.Entry("updated").Kind())
	require.True(t, v.Entry("updated").Time().Equal(time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC)))
	require.Equal(t, int64(443), v.Entry("ports").Items()[1].Int())
	require.Equal(t, "springfield", v.Entry("owner").Entry("address").Entry("city").Str())
}

func TestDecodeTOMLLocalDatetimes(t *testing.T) {
	doc := []byte(`
date = 1979-05-27
datetime = 1979-05-27T07:32:00
clock = 07:32:00
`)

	v, err := DecodeTOML(doc)
	require.NoError(t, err)
	for _, key := range []string{"date", "datetime", "clock"} {
		require.Equal(t, Datetime, v.Entry(key).Kind(), key)
	}
}

func TestDecodeTOMLRejectsMalformed(t *testing.T) {
	_, err := DecodeTOML([]byte(`a = `))
	require.Error(t, err)
}

func TestDecodeJSON(t *testing.T) {
	doc := []byte(`{"name": "x", "count": 3, "ratio": 1.5, "big": 2e3, "on": false, "tags": ["a", "b"]}`)

	v, err := DecodeJSON(doc)
	require.NoError(t, err)

	require.Equal(t, "x", v.Entry("name").Str())
	require.Equal(t, Integer, v.Entry("count").Kind())
	require.Equal(t, int64(3), v.Entry("count").Int())
	require.Equal(t, Float, v.Entry("ratio").Kind())
	require.Equal(t, Float, v.Entry("big").Kind())
	require.False(t, v.Entry("on").Boolean())
	require.Equal(t, "b", v.Entry("tags").Items()[1].Str())
}

func TestDecodeJSONRejects(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"a": `))
	require.Error(t, err)

	_, err = DecodeJSON([]byte(`{"a": null}`))
	require.ErrorContains(t, err, "not representable")
}

func TestDecodeYAML(t *testing.T) {
	doc := []byte(`
name: x
count: 3
nested:
  deep:
    flag: true
items:
  - 1
  - 2
`)

	v, err := DecodeYAML(doc)
	require.NoError(t, err)

	require.Equal(t, "x", v.Entry("name").Str())
	require.Equal(t, int64(3), v.Entry("count").Int())
	require.True(t, v.Entry("nested").Entry("deep").Entry("flag").Boolean())
	require.Equal(t, int64(2), v.Entry("items").Items()[1].Int())
}

func TestDecodeHCL(t *testing.T) {
	doc := []byte(`
name = "x"
count = 3
ratio = 1.5
tags = ["a", "b"]

settings {
  retries = 2
}

server "web" {
  port = 8080
}
`)

	v, err := DecodeHCL(doc, "test.hcl")
	require.NoError(t, err)

	require.Equal(t, "x", v.Entry("name").Str())
	require.Equal(t, int64(3), v.Entry("count").Int())
	require.Equal(t, 1.5, v.Entry("ratio").Flt())
	require.Equal(t, "a", v.Entry("tags").Items()[0].Str())
	require.Equal(t, int64(2), v.Entry("settings").Entry("retries").Int())
	require.Equal(t, int64(8080), v.Entry("server").Entry("web").Entry("port").Int())
}

func TestDecodeHCLRejectsMalformed(t *testing.T) {
	_, err := DecodeHCL([]byte(`name = `), "bad.hcl")
	require.Error(t, err)
}

func TestLookup(t *testing.T) {
	doc := []byte(`
[outer]
[outer.inner]
key = "v"
list = [10, 20]
`)
	root, err := DecodeTOML(doc)
	require.NoError(t, err)

	v, err := Lookup(root, "outer.inner.key")
	require.NoError(t, err)
	require.Equal(t, "v", v.Str())

	v, err = Lookup(root, "outer.inner.list.1")
	require.NoError(t, err)
	require.Equal(t, int64(20), v.Int())

	v, err = Lookup(root, "")
	require.NoError(t, err)
	require.Same(t, root, v)

	_, err = Lookup(root, "outer.missing")
	require.ErrorContains(t, err, "not found")

	_, err = Lookup(root, "outer.inner.list.9")
	require.ErrorContains(t, err, "out of range")

	_, err = Lookup(root, "outer.inner.key.deeper")
	require.ErrorContains(t, err, "not a container")
}
