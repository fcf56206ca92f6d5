package observe

// Field and attribute keys shared by the log and metric wrappers.
const (
	FieldPipeline  = "pipeline"
	FieldTraversal = "traversal"
	FieldIndex     = "index"
	FieldElement   = "element"
	FieldElements  = "elements"
	FieldElapsed   = "elapsed"
)
