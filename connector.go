package eonet

import (
	"context"
	"net"

	"github.com/pkg/errors"
)

// Connector dials a server and runs the resulting Conn.
type Connector struct {
	*Conn
	ops []Option
}

func NewConnector(ops ...Option) *Connector {
	return &Connector{
		ops: ops,
	}
}

func (c *Connector) Connect(ctx context.Context, address string) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return errors.Wrapf(err, "eonet: dial %v", address)
	}
	if c.Conn, err = NewConn(conn, c.ops...); err != nil {
		conn.Close()
		return err
	}
	c.Run()
	return nil
}
