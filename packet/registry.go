package packet

import (
	"reflect"

	cmap "github.com/orcaman/concurrent-map"

	"github.com/huoshan017/eonet/data"
)

// Registry maps (family, action) pairs to packet types. Lookups and
// registrations may run concurrently.
type Registry struct {
	m cmap.ConcurrentMap
}

func NewRegistry(pkts ...Packet) *Registry {
	r := &Registry{m: cmap.New()}
	r.Register(pkts...)
	return r
}

func registryKey(family Family, action Action) string {
	return string([]byte{byte(family), byte(action)})
}

// Register records the type of each packet under its (family, action).
// Packets must be pointers to structs; a later registration of the same pair
// replaces the earlier one.
func (r *Registry) Register(pkts ...Packet) {
	for _, p := range pkts {
		rt := reflect.TypeOf(p)
		if rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Struct {
			panic("eonet: registered packet must be a pointer to struct, got " + rt.String())
		}
		r.m.Set(registryKey(p.Family(), p.Action()), rt)
	}
}

// Lookup returns a new zero value of the packet type registered for the
// pair, or an *UnrecognizedPacketError.
func (r *Registry) Lookup(family Family, action Action) (Packet, error) {
	v, o := r.m.Get(registryKey(family, action))
	if !o {
		return nil, &UnrecognizedPacketError{ID: ID{Family: family, Action: action}}
	}
	return reflect.New(v.(reflect.Type).Elem()).Interface().(Packet), nil
}

// Contains reports whether the pair is registered.
func (r *Registry) Contains(family Family, action Action) bool {
	return r.m.Has(registryKey(family, action))
}

// Count returns the number of registered packet types.
func (r *Registry) Count() int {
	return r.m.Count()
}

// IDs returns every registered pair, in no particular order.
func (r *Registry) IDs() []ID {
	keys := r.m.Keys()
	ids := make([]ID, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, ID{Family: Family(k[0]), Action: Action(k[1])})
	}
	return ids
}

// DeserializeFrom resolves the packet type and decodes it from reader. No
// packet is returned on error.
func (r *Registry) DeserializeFrom(family Family, action Action, reader *data.EoReader) (Packet, error) {
	p, err := r.Lookup(family, action)
	if err != nil {
		return nil, err
	}
	if err = p.Deserialize(reader); err != nil {
		return nil, err
	}
	return p, nil
}

// Deserialize decodes body as the packet registered for the pair.
func (r *Registry) Deserialize(family Family, action Action, body []byte) (Packet, error) {
	return r.DeserializeFrom(family, action, data.NewReader(body))
}
