// Package apkindex implements the ReleaseLookup port by reading APKINDEX archives from APK repositories.
package apkindex

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/apkpin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const (
	httpClientTimeout = 60 * time.Second
	indexFileName     = "APKINDEX.tar.gz"

	// DefaultCacheSize bounds the number of parsed indexes kept in memory.
	DefaultCacheSize = 32
)

// errIndexNotFound marks a 404 for one index URL.
var errIndexNotFound = zerr.New("index not found")

// Client implements ports.ReleaseLookup.
type Client struct {
	httpClient *http.Client
	store      ports.BlobStore
	logger     ports.Logger
	indexes    *lru.Cache[string, *Index]
	group      singleflight.Group
}

// NewClient creates a Client. store may be nil to disable the on-disk cache.
func NewClient(store ports.BlobStore, logger ports.Logger) (*Client, error) {
	return NewClientWithHTTP(&http.Client{Timeout: httpClientTimeout}, store, logger)
}

// NewClientWithHTTP creates a Client using the given HTTP client.
func NewClientWithHTTP(httpClient *http.Client, store ports.BlobStore, logger ports.Logger) (*Client, error) {
	indexes, err := lru.New[string, *Index](DefaultCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create index cache")
	}
	return &Client{
		httpClient: httpClient,
		store:      store,
		logger:     logger,
		indexes:    indexes,
	}, nil
}

// Releases returns every release of name listed by the repositories for arch.
// Repositories that cannot be read are skipped; if none could be read the first
// failure is returned.
func (c *Client) Releases(ctx context.Context, registryURLs []string, arch, name string) ([]domain.Release, error) {
	if len(registryURLs) == 0 {
		return nil, zerr.With(domain.ErrNoRegistries, "package", name)
	}
	if arch == "" {
		arch = domain.DefaultArch
	}

	var (
		releases []domain.Release
		firstErr error
		readable int
	)
	for _, repo := range registryURLs {
		idx, err := c.index(ctx, repo, arch)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("skipping repository", "repository", repo, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		readable++
		for _, e := range idx.Lookup(name) {
			releases = append(releases, domain.Release{Version: e.Version, Repository: repo, Arch: e.Arch})
		}
	}

	if len(releases) > 0 {
		return releases, nil
	}
	if readable == 0 && firstErr != nil {
		return nil, firstErr
	}
	// Wrapped so callers can match the sentinel with errors.Is.
	notFound := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "apk lookup"), "package", name)
	return nil, zerr.With(notFound, "arch", arch)
}

// index returns the parsed index of repo, trying the arch-specific path first.
func (c *Client) index(ctx context.Context, repo, arch string) (*Index, error) {
	base := strings.TrimRight(repo, "/")
	urls := []string{base + "/" + arch + "/" + indexFileName, base + "/" + indexFileName}

	for _, url := range urls {
		idx, err := c.indexAt(ctx, url)
		if errors.Is(err, errIndexNotFound) {
			continue
		}
		return idx, err
	}

	notFound := zerr.With(domain.ErrRegistryRequestFailed, "repository", repo)
	notFound = zerr.With(notFound, "arch", arch)
	return nil, zerr.With(notFound, "status_code", http.StatusNotFound)
}

// indexAt shares one download per URL between concurrent callers. The shared
// fetch runs detached from any single caller so that one canceled caller does
// not fail the others waiting on it.
func (c *Client) indexAt(ctx context.Context, url string) (*Index, error) {
	if idx, ok := c.indexes.Get(url); ok {
		return idx, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := c.group.DoChan(url, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), httpClientTimeout)
		defer cancel()

		data, err := c.archive(fetchCtx, url)
		if err != nil {
			return nil, err
		}
		idx, err := ParseArchive(data)
		if err != nil {
			return nil, zerr.With(err, "url", url)
		}
		c.logger.Debug("loaded apk index", "url", url, "packages", idx.Len())
		c.indexes.Add(url, idx)
		return idx, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Index), nil
	}
}

// archive returns the raw archive, from the blob store when cached.
func (c *Client) archive(ctx context.Context, url string) ([]byte, error) {
	if c.store != nil {
		data, err := c.store.Get(url)
		if err != nil {
			c.logger.Debug("index cache read failed", "url", url, "error", err)
		} else if data != nil {
			c.logger.Debug("index cache hit", "url", url)
			return data, nil
		}
	}

	data, err := c.download(ctx, url)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.Put(url, data); err != nil {
			c.logger.Warn("failed to cache index", "url", url, "error", err)
		}
	}
	return data, nil
}

func (c *Client) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error()), "url", url)
	}

	c.logger.Debug("downloading index", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error()), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only

	if resp.StatusCode == http.StatusNotFound {
		return nil, errIndexNotFound
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrRegistryRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(apiErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error()), "url", url)
	}
	return body, nil
}
