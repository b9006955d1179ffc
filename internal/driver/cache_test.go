package driver

import (
	"context"
	"crypto/sha256"
	"testing"

	"pyfmt/internal/format"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := cacheKey(sha256.Sum256([]byte("x = 1;\n")), format.DefaultOptions())
	if cache.IsClean(key) {
		t.Error("empty cache reported a hit")
	}
	cache.MarkClean(key)
	if !cache.IsClean(key) {
		t.Error("stored key not found")
	}

	other := cacheKey(sha256.Sum256([]byte("y = 2;\n")), format.DefaultOptions())
	if cache.IsClean(other) {
		t.Error("different content hit the same entry")
	}
}

func TestCacheKeyDependsOnOptions(t *testing.T) {
	hash := sha256.Sum256([]byte("x = 1;\n"))
	base := cacheKey(hash, format.DefaultOptions())

	narrow := format.DefaultOptions()
	narrow.MaxLineLen = 80
	if cacheKey(hash, narrow) == base {
		t.Error("MaxLineLen change kept the same key")
	}

	noCollapse := format.DefaultOptions()
	noCollapse.Collapse = false
	if cacheKey(hash, noCollapse) == base {
		t.Error("Collapse change kept the same key")
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var cache *DiskCache
	key := cacheKey(sha256.Sum256([]byte("x")), format.DefaultOptions())
	cache.MarkClean(key)
	if cache.IsClean(key) {
		t.Error("nil cache reported a hit")
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("DropAll on nil cache: %v", err)
	}
}

func TestFormatSingleFileCachesCleanRuns(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.py", "x = 1;\n")
	dirty := writeFile(t, dir, "dirty.py", "x = 1\n")

	opts := defaultFormatOptions()
	opts.Cache = cache
	results, err := FormatPaths(context.Background(), []string{clean, dirty}, opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatal(r.Err)
		}
	}

	cleanKey := cacheKey(sha256.Sum256([]byte("x = 1;\n")), opts.Options)
	if !cache.IsClean(cleanKey) {
		t.Error("clean file not recorded")
	}
	// The dirty file changed on disk, so neither its old nor its new
	// content may have been recorded during this run.
	dirtyKey := cacheKey(sha256.Sum256([]byte("x = 1\n")), opts.Options)
	if cache.IsClean(dirtyKey) {
		t.Error("changed file recorded as clean")
	}

	// A second pass over the now-clean file hits the cache and still
	// reports an unchanged result.
	results, err = FormatPaths(context.Background(), []string{clean}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed {
		t.Error("cache hit reported Changed")
	}
	if string(results[0].Formatted) != "x = 1;\n" {
		t.Errorf("Formatted = %q", results[0].Formatted)
	}
}

func TestNoCacheBypassesCache(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", "x = 1;\n")

	opts := defaultFormatOptions()
	opts.Cache = cache
	opts.NoCache = true
	if _, err := FormatPaths(context.Background(), []string{path}, opts); err != nil {
		t.Fatal(err)
	}

	key := cacheKey(sha256.Sum256([]byte("x = 1;\n")), opts.Options)
	if cache.IsClean(key) {
		t.Error("NoCache run still wrote a cache entry")
	}
}
