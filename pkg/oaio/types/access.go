package types

// Access modes tell the manager what the host intends to do with the
// entities in a request.

type ResolveAccess int

const (
	ResolveAccessRead ResolveAccess = iota
	ResolveAccessManagerDriven
)

func (a ResolveAccess) String() string {
	switch a {
	case ResolveAccessRead:
		return "read"
	case ResolveAccessManagerDriven:
		return "managerDriven"
	}
	return "unknown"
}

type RelationsAccess int

const (
	RelationsAccessRead RelationsAccess = iota
	RelationsAccessWrite
	RelationsAccessCreateRelated
)

func (a RelationsAccess) String() string {
	switch a {
	case RelationsAccessRead:
		return "read"
	case RelationsAccessWrite:
		return "write"
	case RelationsAccessCreateRelated:
		return "createRelated"
	}
	return "unknown"
}

type PolicyAccess int

const (
	PolicyAccessRead PolicyAccess = iota
	PolicyAccessWrite
	PolicyAccessCreateRelated
	PolicyAccessRequired
	PolicyAccessManagerDriven
)

func (a PolicyAccess) String() string {
	switch a {
	case PolicyAccessRead:
		return "read"
	case PolicyAccessWrite:
		return "write"
	case PolicyAccessCreateRelated:
		return "createRelated"
	case PolicyAccessRequired:
		return "required"
	case PolicyAccessManagerDriven:
		return "managerDriven"
	}
	return "unknown"
}

type PublishingAccess int

const (
	PublishingAccessWrite PublishingAccess = iota
	PublishingAccessCreateRelated
)

func (a PublishingAccess) String() string {
	switch a {
	case PublishingAccessWrite:
		return "write"
	case PublishingAccessCreateRelated:
		return "createRelated"
	}
	return "unknown"
}

type EntityTraitsAccess int

const (
	EntityTraitsAccessRead EntityTraitsAccess = iota
	EntityTraitsAccessWrite
	EntityTraitsAccessCreateRelated
)

func (a EntityTraitsAccess) String() string {
	switch a {
	case EntityTraitsAccessRead:
		return "read"
	case EntityTraitsAccessWrite:
		return "write"
	case EntityTraitsAccessCreateRelated:
		return "createRelated"
	}
	return "unknown"
}
