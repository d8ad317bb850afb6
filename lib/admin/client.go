package admin

import (
	"encoding/json"
	"net"

	"github.com/samber/oops"

	"github.com/yggdrasil-community/peers-updater/lib/util/logger"
)

var log = logger.GetLogger()

type request struct {
	Request   string                 `json:"request"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
	KeepAlive bool                   `json:"keepalive"`
}

type response struct {
	Status   string          `json:"status"`
	Error    string          `json:"error,omitempty"`
	Response json.RawMessage `json:"response"`
}

// RemotePeer is one entry of a getpeers response.
type RemotePeer struct {
	Remote string `json:"remote"`
	Up     bool   `json:"up"`
}

// Client is a connection to the admin socket.
type Client struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
}

// Dial connects to the admin socket. network is "unix" or "tcp".
func Dial(network, address string) (*Client, error) {
	conn, err := net.Dial(network, address)
	if err != nil {
		return nil, oops.Wrapf(err, "connecting to admin socket %s", address)
	}
	return &Client{
		conn: conn,
		enc:  json.NewEncoder(conn),
		dec:  json.NewDecoder(conn),
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// call sends one request and decodes the method response into out, which
// may be nil when the caller only cares about success.
func (c *Client) call(name string, args map[string]interface{}, out interface{}) error {
	req := request{Request: name, Arguments: args, KeepAlive: true}
	if err := c.enc.Encode(&req); err != nil {
		return oops.Wrapf(err, "sending %s request", name)
	}

	var resp response
	if err := c.dec.Decode(&resp); err != nil {
		return oops.Wrapf(err, "reading %s response", name)
	}
	if resp.Status != "success" {
		return oops.Errorf("%s failed: %s", name, resp.Error)
	}
	if out == nil {
		return nil
	}
	return oops.Wrapf(json.Unmarshal(resp.Response, out), "decoding %s response", name)
}

// GetPeers returns the node's current peer connections.
func (c *Client) GetPeers() ([]RemotePeer, error) {
	var out struct {
		Peers []RemotePeer `json:"peers"`
	}
	if err := c.call("getpeers", nil, &out); err != nil {
		return nil, err
	}
	return out.Peers, nil
}

// AddPeer asks the node to open a connection to uri.
func (c *Client) AddPeer(uri string) error {
	return c.call("addpeer", map[string]interface{}{"uri": uri}, nil)
}

// RemovePeer asks the node to drop its connection to uri.
func (c *Client) RemovePeer(uri string) error {
	return c.call("removepeer", map[string]interface{}{"uri": uri}, nil)
}
