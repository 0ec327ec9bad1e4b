package x11

import "github.com/BurntSushi/xgb/xproto"

// Resolve turns a raw window identifier into a fully populated Window, or
// reports that it cannot be done. Resolution is all-or-nothing: when the
// name or the geometry cannot be read, no handle is produced at all. The
// returned Window holds its own reference to the connection.
func Resolve(c Client, id xproto.Window) (*Window, error) {
	name, err := c.WindowName(id)
	if err != nil {
		return nil, err
	}

	geom, err := c.WindowGeometry(id)
	if err != nil {
		return nil, err
	}

	c.Retain()
	return &Window{
		Name:   name,
		Geom:   geom,
		ID:     id,
		client: c,
	}, nil
}
