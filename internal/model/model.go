package model

// KeyKind discriminates the two shapes of EntityKey.
type KeyKind uint8

const (
	// KindServerZone identifies a virtual-host server zone.
	KindServerZone KeyKind = iota
	// KindUpstreamServer identifies one backend server inside an upstream group.
	KindUpstreamServer
)

// EntityKey identifies a countable entity: either a server zone or an
// upstream-group/server-address pair. The zero value is not a valid key;
// use ServerZoneKey or UpstreamServerKey. EntityKey is comparable and is
// used directly as a map key, so equality is exact string match.
type EntityKey struct {
	Kind     KeyKind
	Zone     string // server zone name (KindServerZone only)
	Upstream string // upstream group name (KindUpstreamServer only)
	Server   string // backend address, e.g. "10.0.0.1:80" (KindUpstreamServer only)
}

// ServerZoneKey builds the key for a server zone.
func ServerZoneKey(name string) EntityKey {
	return EntityKey{Kind: KindServerZone, Zone: name}
}

// UpstreamServerKey builds the key for one server of an upstream group.
func UpstreamServerKey(group, address string) EntityKey {
	return EntityKey{Kind: KindUpstreamServer, Upstream: group, Server: address}
}

// String renders a stable textual form of the key, used for shard selection
// and sorted snapshot output.
func (k EntityKey) String() string {
	if k.Kind == KindServerZone {
		return k.Zone
	}
	return k.Upstream + "/" + k.Server
}

// Event carries the already-extracted measurements of one completed request.
// UpstreamTimeMS is only meaningful for upstream keys.
type Event struct {
	Key            EntityKey
	StatusCode     int
	BytesIn        uint64
	BytesOut       uint64
	RequestTimeMS  uint64
	UpstreamTimeMS uint64
}
