package animator

// State is the progress of a run through the pipeline.
type State int

const (
	// Created is the state of a new Animator; no record has been registered.
	Created State = iota
	// Canonicalized means every input record is normalized and registered.
	Canonicalized
	// ExtensionsProcessed means every extension passed its version check and
	// is indexed by name.
	ExtensionsProcessed
	// ContainersExpanded means every container has been expanded.
	ContainersExpanded
	// NodesProcessed means every explicit node is in the node list.
	NodesProcessed
	// FullyProcessed means edges and other items have resolved their
	// references, synthesizing implicit nodes as needed.
	FullyProcessed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Canonicalized:
		return "canonicalized"
	case ExtensionsProcessed:
		return "extensions-processed"
	case ContainersExpanded:
		return "containers-expanded"
	case NodesProcessed:
		return "nodes-processed"
	case FullyProcessed:
		return "fully-processed"
	default:
		return "unknown"
	}
}
