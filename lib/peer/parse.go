package peer

import (
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"

	"github.com/yggdrasil-community/peers-updater/lib/util/logger"
)

var log = logger.GetLogger()

// Connection schemes Yggdrasil understands in a Peers entry.
var uriSchemes = map[string]bool{
	"tcp":  true,
	"tls":  true,
	"quic": true,
	"ws":   true,
	"wss":  true,
}

// CollectPeers walks an extracted public-peers tree and returns every
// distinct peer URI found in its markdown files. The directory layout
// supplies the labels: region is the subdirectory name, country the file
// name without its extension.
func CollectPeers(root string) ([]Peer, error) {
	var peers []Peer
	seen := map[string]bool{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		text, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		region := filepath.Base(filepath.Dir(path))
		country := strings.TrimSuffix(d.Name(), ".md")
		for _, uri := range extractURIs(string(text)) {
			if seen[uri] {
				continue
			}
			seen[uri] = true
			peers = append(peers, Peer{URI: uri, Region: region, Country: country})
		}
		return nil
	})
	if err != nil {
		return nil, oops.Wrapf(err, "walking peer directory %s", root)
	}

	log.Debugf("collected %d peers from %s", len(peers), root)
	return peers, nil
}

// extractURIs pulls peer URIs out of the backtick spans the public-peers
// markdown files wrap them in, dropping anything that is not a valid
// connection URI.
func extractURIs(text string) []string {
	var uris []string
	for {
		open := strings.IndexByte(text, '`')
		if open < 0 {
			break
		}
		text = text[open+1:]
		span := strings.IndexByte(text, '`')
		if span < 0 {
			break
		}
		if uri := strings.TrimSpace(text[:span]); ValidURI(uri) {
			uris = append(uris, uri)
		}
		text = text[span+1:]
	}
	return uris
}

// ValidURI reports whether s looks like a usable peer connection URI.
func ValidURI(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return uriSchemes[u.Scheme] && u.Host != "" && u.Port() != ""
}
