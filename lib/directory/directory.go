// Package directory downloads and unpacks the public peer directory.
//
// The directory is the yggdrasil-network/public-peers repository, fetched
// as a zip snapshot from GitHub and extracted into a temporary directory
// that the caller is expected to remove once the peers are collected.
package directory

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-i2p/go-unzip/pkg/unzip"
	"github.com/samber/oops"

	"github.com/yggdrasil-community/peers-updater/lib/util/logger"
)

var log = logger.GetLogger()

const (
	archiveName = "peers.zip"
	// extractedRoot is the top-level directory GitHub puts inside a branch
	// snapshot of public-peers.
	extractedRoot = "public-peers-master"
)

// Fetcher downloads peer directory snapshots.
type Fetcher struct {
	// URL of the zip snapshot.
	URL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

// Fetch downloads and extracts the directory, returning the path of the
// extracted tree and a cleanup function that removes everything Fetch
// created. Cleanup is safe to call even when Fetch fails.
func (f *Fetcher) Fetch(ctx context.Context) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "peers_updater_")
	if err != nil {
		return "", func() {}, oops.Wrapf(err, "creating temporary directory")
	}
	cleanup := func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			log.WithError(err).Warnf("could not remove %s", tmpDir)
		}
	}

	archive := filepath.Join(tmpDir, archiveName)
	if err := f.download(ctx, archive); err != nil {
		return "", cleanup, oops.Wrapf(err, "downloading peer directory")
	}

	if _, err := unzip.New().Extract(archive, tmpDir); err != nil {
		return "", cleanup, oops.Wrapf(err, "extracting %s", archive)
	}

	root := filepath.Join(tmpDir, extractedRoot)
	prune(tmpDir, root)
	return root, cleanup, nil
}

func (f *Fetcher) download(ctx context.Context, dest string) error {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return oops.Errorf("unexpected status %s from %s", resp.Status, f.URL)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// prune drops the parts of the snapshot that hold no peer lists: the
// archive itself, the repository README and the "other" transports tree.
// Failures here only cost disk space, so they are logged and ignored.
func prune(tmpDir, root string) {
	for _, p := range []string{
		filepath.Join(tmpDir, archiveName),
		filepath.Join(root, "README.md"),
	} {
		if err := os.Remove(p); err != nil {
			log.WithError(err).Debugf("could not remove %s", p)
		}
	}
	if err := os.RemoveAll(filepath.Join(root, "other")); err != nil {
		log.WithError(err).Debugf("could not remove other/ tree")
	}
}
