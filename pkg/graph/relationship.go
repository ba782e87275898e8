package graph

// Relationship is an ordered, typed edge between two nodes, referencing its
// endpoints by identity value rather than by live node references. The
// endpoint type names ride along for emission but are excluded from the
// deduplication key: two relationships are the same edge iff source
// identity, type name, and target identity all match.
type Relationship struct {
	SourceID   string
	SourceType string
	TypeName   string
	TargetID   string
	TargetType string
}

// NewRelationship builds the edge (source)-[:typeName]->(target).
func NewRelationship(source Node, typeName string, target Node) Relationship {
	return Relationship{
		SourceID:   source.Identity,
		SourceType: source.TypeName,
		TypeName:   typeName,
		TargetID:   target.Identity,
		TargetType: target.TypeName,
	}
}

type relationshipKey struct {
	source, typeName, target string
}

func (r Relationship) key() relationshipKey {
	return relationshipKey{source: r.SourceID, typeName: r.TypeName, target: r.TargetID}
}
