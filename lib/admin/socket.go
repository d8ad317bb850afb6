package admin

import (
	"net/url"

	"github.com/hjson/hjson-go/v4"
	"github.com/samber/oops"

	"github.com/yggdrasil-community/peers-updater/lib/config"
)

// SocketAddress determines where the node's admin socket listens. A
// non-empty override wins; otherwise the AdminListen key of the given
// configuration text decides, falling back to the platform default when
// the key is absent. An AdminListen of "none" means the node exposes no
// admin surface at all.
func SocketAddress(cfgText, override string) (network, address string, err error) {
	listen := override
	if listen == "" {
		listen, err = adminListen(cfgText)
		if err != nil {
			return "", "", err
		}
	}
	if listen == "none" {
		return "", "", oops.Errorf("the node's admin socket is disabled (AdminListen: none)")
	}

	u, err := url.Parse(listen)
	if err != nil {
		return "", "", oops.Wrapf(err, "parsing admin socket address %q", listen)
	}
	switch u.Scheme {
	case "unix":
		return "unix", u.Path, nil
	case "tcp":
		return "tcp", u.Host, nil
	default:
		return "", "", oops.Errorf("unsupported admin socket scheme %q", u.Scheme)
	}
}

func adminListen(cfgText string) (string, error) {
	var doc map[string]interface{}
	if err := hjson.Unmarshal([]byte(cfgText), &doc); err != nil {
		return "", oops.Wrapf(err, "parsing configuration file")
	}
	listen, ok := doc["AdminListen"].(string)
	if !ok || listen == "" {
		return config.DefaultAdminSocket(), nil
	}
	return listen, nil
}
