package manager

// EntityReference is a string that the manager has confirmed to be one of
// its own references. It can only be created by a Manager.
type EntityReference struct {
	ref string
}

func (r EntityReference) String() string {
	return r.ref
}

func wrapReferences(refs []string) []EntityReference {
	wrapped := make([]EntityReference, 0, len(refs))
	for _, r := range refs {
		wrapped = append(wrapped, EntityReference{ref: r})
	}
	return wrapped
}

func unwrapReferences(refs []EntityReference) []string {
	raw := make([]string, 0, len(refs))
	for _, r := range refs {
		raw = append(raw, r.ref)
	}
	return raw
}
